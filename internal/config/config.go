package config

import (
	"github.com/0x0FACED/go-bisector/pkg/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type Config struct {
	Addr      string
	Width     int
	Height    int
	Mode      render.Mode
	LogStdout bool
	Verbose   bool
}

// Parse reads flags from args (without the program name).
func Parse(args []string) (*Config, error) {
	var (
		cfg  Config
		mode string
	)

	app := kingpin.New("bisector", "Interactive bisector cell demo.")
	app.Flag("addr", "HTTP listen address.").Default(":8080").StringVar(&cfg.Addr)
	app.Flag("width", "Initial canvas width in pixels.").Default("1000").IntVar(&cfg.Width)
	app.Flag("height", "Initial canvas height in pixels.").Default("600").IntVar(&cfg.Height)
	app.Flag("mode", "Initial layers, e.g. points+polygons.").Default("points").StringVar(&mode)
	app.Flag("log-stdout", "Also write logs to stdout.").Default("true").BoolVar(&cfg.LogStdout)
	app.Flag("verbose", "Log debug messages.").Short('v').BoolVar(&cfg.Verbose)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}

	m, err := render.ParseMode(mode)
	if err != nil {
		return nil, errors.Wrap(err, "--mode")
	}
	cfg.Mode = m

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Errorf("canvas size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}

	return &cfg, nil
}
