package main

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/aneshas/peoplegen"
	"github.com/aneshas/peoplegen/core"
	"github.com/aneshas/peoplegen/internal/config"
	"github.com/labstack/echo/v4"
)

// Peoplegen would be usable as an embedded generator (root) or as an
// executable (this) - executable provides an http api

func main() {
	cfg := config.MustLoad()

	e := echo.New()

	s := server{cfg: cfg}

	e.POST("/datasets", s.generate)
	e.GET("/datasets/:name", s.download)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	log.Fatal(e.Start(cfg.Addr))
}

type server struct {
	cfg *config.Config
}

type generateRequest struct {
	Rows int64   `json:"rows"`
	Out  string  `json:"out"`
	Seed *uint64 `json:"seed"`
}

// Generate a dataset
func (s *server) generate(c echo.Context) error {
	req := generateRequest{
		Rows: s.cfg.Rows,
		Out:  s.cfg.Out,
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	opts := []peoplegen.Option{
		peoplegen.WithRows(req.Rows),
		peoplegen.WithOutFile(filepath.Base(req.Out)),
	}

	if req.Seed != nil {
		opts = append(opts, peoplegen.WithSeed(*req.Seed))
	}

	sum, err := peoplegen.Generate(opts...)
	if err != nil {
		if errors.Is(err, core.ErrInvalidRowCount) || errors.Is(err, core.ErrInvalidOutFile) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, sum)
}

// Download a previously generated dataset
func (s *server) download(c echo.Context) error {
	return c.File(filepath.Base(c.Param("name")))
}
