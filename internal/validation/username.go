package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MaxDeviceNameLen максимальная длина имени устройства
	MaxDeviceNameLen = 64
)

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}

// ValidateDiscordUserID проверяет, что Discord user ID является
// десятичным snowflake. Сервер отверг бы нечисловое значение кодом
// INVALID_DISCORD_USER_ID, но дешевле поймать опечатку до запроса.
func ValidateDiscordUserID(id string) error {
	if id == "" {
		return fmt.Errorf("discord user ID cannot be empty")
	}

	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return fmt.Errorf("discord user ID must be a decimal number")
	}

	return nil
}

// ValidateDeviceName проверяет имя устройства
func ValidateDeviceName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("device name cannot be empty")
	}

	if len(name) > MaxDeviceNameLen {
		return fmt.Errorf("device name must not exceed %d characters", MaxDeviceNameLen)
	}

	return nil
}
