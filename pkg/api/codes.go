package api

import "fmt"

// Code представляет код результата операции в Result envelope.
// Ноль всегда означает успех, остальные значения — конкретную причину отказа.
type Code int

// Коды результата, выдаваемые сервером
const (
	CodeSuccess              Code = 0 // операция выполнена успешно
	CodeDatabaseFailure      Code = 1 // ошибка базы данных на сервере
	CodeUserNotFound         Code = 2 // пользователь не найден
	CodeDeviceNotFound       Code = 3 // устройство не найдено
	CodeIncorrectCredentials Code = 4 // неверные учетные данные
	CodeDuplicateUsername    Code = 5 // username уже занят
	CodeInvalidDiscordUserID Code = 6 // некорректный Discord user ID
	CodeDiscordAPIError      Code = 7 // ошибка Discord API
)

// codeMessages содержит фиксированную таблицу сообщений для известных кодов
var codeMessages = map[Code]string{
	CodeSuccess:              "Success",
	CodeDatabaseFailure:      "Database operation failed",
	CodeUserNotFound:         "User not found",
	CodeDeviceNotFound:       "Device not found",
	CodeIncorrectCredentials: "Incorrect credentials",
	CodeDuplicateUsername:    "Username already exists",
	CodeInvalidDiscordUserID: "Invalid Discord user ID",
	CodeDiscordAPIError:      "Discord API error",
}

// Message возвращает человекочитаемое сообщение для кода результата.
// Для неизвестных кодов возвращается сообщение с числовым значением кода,
// чтобы его можно было диагностировать.
func (c Code) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown error (code: %d)", int(c))
}

// IsSuccess сообщает, означает ли код успешное выполнение операции
func (c Code) IsSuccess() bool {
	return c == CodeSuccess
}

// Result представляет универсальный конверт ответа сервера {code, data}.
// Data можно использовать только при Code == CodeSuccess.
type Result[T any] struct {
	Code Code `json:"code"` // код результата операции
	Data T    `json:"data"` // полезная нагрузка (может быть null при ошибке)
}
