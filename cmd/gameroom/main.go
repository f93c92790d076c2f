package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/cmd/gameroom/demo"
	"github.com/six78/gameroom-cli/internal/app"
	"github.com/six78/gameroom-cli/internal/config"
	"github.com/six78/gameroom-cli/internal/transport"
	"github.com/six78/gameroom-cli/internal/version"
	"github.com/six78/gameroom-cli/internal/view"
	"github.com/six78/gameroom-cli/pkg/connection"
)

func main() {
	config.ParseArguments()

	if config.ShowVersion() {
		fmt.Println(version.Version())
		return
	}

	config.SetupLogger()
	config.Logger.Info("starting",
		zap.String("version", version.Version()),
		zap.String("server", config.ServerURL()))

	ctx, quit := context.WithCancel(context.Background())
	defer quit()

	a := createApp(config.Logger)
	if a == nil {
		os.Exit(1)
	}

	program := view.NewProgram(a)

	if config.Demo() {
		d := demo.New(ctx, a, program)
		go d.Routine()
	}

	code := view.Run(program)
	a.Stop()
	os.Exit(code)
}

func createApp(logger *zap.Logger) *app.App {
	return app.NewApp([]app.Option{
		app.WithDialer(transport.NewWebsocketDialer(logger)),
		app.WithLogger(logger),
		app.WithServerURL(config.ServerURL()),
		app.WithAvatar(config.Avatar()),
		app.WithConnectionOptions(
			connection.WithConnectTimeout(config.ConnectTimeout()),
			connection.WithReconnectPolicy(config.ReconnectAttempts(), config.ReconnectDelay()),
		),
	})
}
