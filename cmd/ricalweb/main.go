package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"rical/internal/web"
)

func parseFlags() web.Params {
	var p web.Params
	flag.StringVar(&p.ConfigPath, "config", "", "path to config.toml (default: user config dir)")
	flag.StringVar(&p.Addr, "addr", "", "listen address, e.g. :8080 (overrides config and RICAL_WEB_PORT)")
	flag.StringVar(&p.ContentPath, "content", "", "YAML file replacing the built-in page copy")
	flag.StringVar(&p.LogFormat, "log-format", "", "log encoding: console or json")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ricalweb [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Serves the Rical landing page over HTTP.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return p
}

func main() {
	params := parseFlags()

	app := fx.New(
		web.Module(params),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx").WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "ricalweb: %v\n", err)
		os.Exit(1)
	}
	app.Run()
}
