package cli

import (
	"fmt"

	httpClient "github.com/iudanet/fallwatch/internal/client/api"
	"github.com/iudanet/fallwatch/internal/client/auth"
	"github.com/iudanet/fallwatch/internal/client/dashboard"
	"github.com/iudanet/fallwatch/internal/client/iocli"
)

type Cli struct {
	io               iocli.IO
	apiClient        httpClient.ClientAPI
	authService      auth.Service
	dashboardService dashboard.Service
}

func New(io iocli.IO, apiClient httpClient.ClientAPI, authService auth.Service, dashboardService dashboard.Service) *Cli {
	return &Cli{
		io:               io,
		apiClient:        apiClient,
		authService:      authService,
		dashboardService: dashboardService,
	}
}

func PrintUsage() {
	fmt.Println("FallWatch Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fallwatch [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8000)")
	fmt.Println("  --db PATH      Path to local database (default: fallwatch-client.db)")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  FALLWATCH_SERVER_URL   Server URL (overridden by --server)")
	fmt.Println("  FALLWATCH_DB_PATH      Path to local database (overridden by --db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register             Register new user")
	fmt.Println("  login                Login to server")
	fmt.Println("  logout               Logout (delete local session)")
	fmt.Println("  status               Show authentication status")
	fmt.Println("  devices              List your devices")
	fmt.Println("  devices add          Register a new device")
	fmt.Println("  events <device-id>   Show events of one device, newest first")
	fmt.Println("  dashboard            Show devices and recent events overview")
	fmt.Println("  health               Check server availability")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  fallwatch register")
	fmt.Println("  fallwatch login")
	fmt.Println("  fallwatch devices add")
	fmt.Println("  fallwatch events 3")
	fmt.Println("  fallwatch --server https://fallwatch.example.com dashboard")
}
