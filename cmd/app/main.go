package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/0x0FACED/go-bisector/internal/config"
	"github.com/0x0FACED/go-bisector/pkg/board"
	"github.com/0x0FACED/go-bisector/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка конфигурации:", err)
		os.Exit(2)
	}

	var sinks []io.Writer
	if cfg.LogStdout {
		sinks = append(sinks, os.Stdout)
	}
	level := zapcore.InfoLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewWithLevel(level, sinks...)
	defer log.Sync()

	b := board.New(log.Named("board"),
		board.WithSize(cfg.Width, cfg.Height),
		board.WithMode(cfg.Mode),
	)

	srv, err := newServer(b, log.Named("http"))
	if err != nil {
		log.Fatal("Не удалось создать сервер", zap.Error(err))
	}

	log.Info("Сервер запущен", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, srv.routes()); err != nil {
		log.Fatal("Err ListenAndServe", zap.Error(err))
	}
}
