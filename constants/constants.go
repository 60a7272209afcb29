package constants

// OS Names
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Event Names
const (
	EventLibraryChanged  = "library-changed"
	EventGameStarted     = "game-started"
	EventGameExited      = "game-exited"
	EventLaunchFailed    = "launch-failed"
	EventInstallProgress = "install-progress"
)

// Store keys
const (
	KeyLibrary  = "library"
	KeySettings = "settings"
)

// Path Components
const (
	AppName          = "go-game-library"
	DefaultStoreName = "user-preferences"
	ConfigFileName   = "config"
	LogsDir          = "logs"
	LogFileName      = "go-game-library.log"
	GamesDir         = "Games"
)

// Defaults
const (
	DefaultTheme = "dark"
	EnvPrefix    = "GAMELIB"
)
