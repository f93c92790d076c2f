package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shibukawa/configdir"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

const logsDirectory = "logs"

const VendorName = "six78"
const ApplicationName = "gameroom"

const DefaultServerURL = "ws://localhost:8080/ws"
const DefaultConnectTimeout = 5 * time.Second
const DefaultReconnectAttempts = 5
const DefaultReconnectDelay = 2 * time.Second

const UserColor = lipgloss.Color("#7D56F4")
const ForegroundShadeColor = lipgloss.Color("#555555")
const ErrorColor = lipgloss.Color("#FF5F87")

var serverURL string
var debug bool
var avatar int
var connectTimeout time.Duration
var reconnectAttempts int
var reconnectDelay time.Duration
var showVersion bool
var demo bool
var initialAction string

var Logger *zap.Logger
var LogFilePath string

func SetupLogger() {
	var c zap.Config
	if debug {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
	}

	LogFilePath = createLogFile()
	c.OutputPaths = []string{LogFilePath}
	c.Development = false
	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	Logger = logger
}

func createLogFile() string {
	name := fmt.Sprintf("%s-%s.log", ApplicationName, time.Now().UTC().Format(time.RFC3339))
	name = strings.Replace(name, ":", "-", -1)

	configDirs := configdir.New(VendorName, ApplicationName)
	folders := configDirs.QueryFolders(configdir.Global)
	path := filepath.Join(folders[0].Path, logsDirectory, name)

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		panic(err)
	}

	if _, err := os.Create(path); err != nil {
		panic(err)
	}

	return path
}

func ParseArguments() {
	flag.StringVar(&serverURL, "server", DefaultServerURL, "Game server websocket URL")
	flag.BoolVar(&debug, "debug", false, "Show debug info")
	flag.IntVar(&avatar, "avatar", 0, fmt.Sprintf("Initial avatar, 0..%d", protocol.NumAvatarKinds-1))
	flag.DurationVar(&connectTimeout, "connect.timeout", DefaultConnectTimeout, "Connection attempt timeout")
	flag.IntVar(&reconnectAttempts, "reconnect.attempts", DefaultReconnectAttempts, "Automatic reconnection attempts")
	flag.DurationVar(&reconnectDelay, "reconnect.delay", DefaultReconnectDelay, "Delay between reconnection attempts")
	flag.BoolVar(&showVersion, "version", false, "Print version and quit")
	flag.BoolVar(&demo, "demo", false, "Run demo and quit")
	flag.Parse()

	initialAction = strings.Join(flag.Args(), " ")
}

func ServerURL() string {
	return serverURL
}

func Debug() bool {
	return debug
}

func Avatar() protocol.AvatarKind {
	kind := protocol.AvatarKind(avatar)
	if !kind.Valid() {
		return 0
	}
	return kind
}

func ConnectTimeout() time.Duration {
	return connectTimeout
}

func ReconnectAttempts() int {
	return reconnectAttempts
}

func ReconnectDelay() time.Duration {
	return reconnectDelay
}

func ShowVersion() bool {
	return showVersion
}

func Demo() bool {
	return demo
}

// InitialAction is a command to run once connected, taken from the
// positional arguments.
func InitialAction() string {
	return initialAction
}
