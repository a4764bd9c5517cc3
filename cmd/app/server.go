package main

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/0x0FACED/go-bisector/pkg/board"
	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/0x0FACED/go-bisector/pkg/logger"
	"github.com/0x0FACED/go-bisector/pkg/render"
	"github.com/0x0FACED/go-bisector/static"
	"go.uber.org/zap"
)

type server struct {
	board *board.Board
	log   *logger.ZapLogger

	// one raster canvas reused across requests
	canvasMu sync.Mutex
	canvas   *render.Canvas
}

func newServer(b *board.Board, log *logger.ZapLogger) (*server, error) {
	width, height := b.Size()
	canvas, err := render.NewCanvas(width, height)
	if err != nil {
		return nil, err
	}

	return &server{
		board:  b,
		log:    log,
		canvas: canvas,
	}, nil
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.pageHandler)
	mux.HandleFunc("/point", s.postOnly(s.pointHandler))
	mux.HandleFunc("/reset", s.postOnly(s.resetHandler))
	mux.HandleFunc("/mode", s.postOnly(s.modeHandler))
	mux.HandleFunc("/resize", s.postOnly(s.resizeHandler))
	mux.HandleFunc("/plot.png", s.plotHandler)
	mux.HandleFunc("/chart", s.chartHandler)
	return mux
}

func (s *server) postOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h(w, r)
	}
}

// страница: управление, картинка и логи
func (s *server) pageHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	mode := s.board.Mode()
	width, height := s.board.Size()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintln(w, static.Part1)

	for _, m := range render.Modes {
		selected := ""
		if m == mode {
			selected = " selected"
		}
		fmt.Fprintf(w, "<option value=%q%s>%s</option>\n", m.String(), selected, m.String())
	}
	if render.ModeIndex(mode) < 0 {
		fmt.Fprintf(w, "<option value=%q selected>%s</option>\n", mode.String(), mode.String())
	}
	fmt.Fprintln(w, `</select>`)
	fmt.Fprintln(w, `<button id="nextMode">&gt;</button>`)
	fmt.Fprintln(w, `<button id="reset">Сброс</button>`)
	fmt.Fprintln(w, `<a href="/chart" target="_blank">echarts</a>`)
	fmt.Fprintf(w, "<span> точек: %d</span>\n", len(s.board.Points()))
	fmt.Fprintln(w, `</div>`)
	fmt.Fprintf(w, `<div id="plot"><img id="plot-img" src="/plot.png?t=%d" width="%d" height="%d"></div>`+"\n",
		time.Now().UnixNano(), width, height)

	fmt.Fprintln(w, static.Part2)
	fmt.Fprintln(w, s.log.HTML())
	fmt.Fprintln(w, static.Part3)
}

func (s *server) pointHandler(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.FormValue("x"), 64)
	y, errY := strconv.ParseFloat(r.FormValue("y"), 64)
	if errX != nil || errY != nil {
		http.Error(w, "x and y must be numbers", http.StatusBadRequest)
		return
	}
	p := geom.Point{X: x, Y: y}
	if !p.IsFinite() {
		http.Error(w, "x and y must be finite", http.StatusBadRequest)
		return
	}

	if err := s.board.AddPoint(p); err != nil {
		s.log.Error("[h] Точка не добавлена", zap.Error(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) resetHandler(w http.ResponseWriter, r *http.Request) {
	s.board.Clear()
	s.log.ClearLogs()
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) modeHandler(w http.ResponseWriter, r *http.Request) {
	switch r.FormValue("step") {
	case "next":
		s.board.NextMode()
	case "prev":
		s.board.PrevMode()
	case "":
		m, err := render.ParseMode(r.FormValue("mode"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.board.SetMode(m)
	default:
		http.Error(w, "step must be next or prev", http.StatusBadRequest)
		return
	}
	fmt.Fprint(w, s.board.Mode().String())
}

func (s *server) resizeHandler(w http.ResponseWriter, r *http.Request) {
	width, errW := strconv.Atoi(r.FormValue("width"))
	height, errH := strconv.Atoi(r.FormValue("height"))
	if errW != nil || errH != nil {
		http.Error(w, "width and height must be integers", http.StatusBadRequest)
		return
	}
	s.board.Resize(width, height)
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) plotHandler(w http.ResponseWriter, r *http.Request) {
	s.canvasMu.Lock()
	defer s.canvasMu.Unlock()

	s.board.Draw(s.canvas)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.canvas.EncodePNG(w); err != nil {
		s.log.Error("[h] Ошибка кодирования PNG", zap.Error(err))
	}
}

func (s *server) chartHandler(w http.ResponseWriter, r *http.Request) {
	chart := render.NewChart(s.board.Size())
	s.board.Draw(chart)

	if err := chart.Render(w); err != nil {
		s.log.Error("[h] Ошибка рендеринга диаграммы", zap.Error(err))
	}
}
