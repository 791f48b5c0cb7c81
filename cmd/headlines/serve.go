package main

import (
	"fmt"
	"os/signal"
	"syscall"

	headlineshttp "github.com/fwojciec/headlines/http"
	"github.com/gin-gonic/gin"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := headlineshttp.NewServer(deps.Articles, deps.Annotator, deps.Scraper, deps.Logger)

	fmt.Fprintf(deps.Stdout, "App running on port %d\n", c.Port)
	return server.Serve(ctx, fmt.Sprintf(":%d", c.Port))
}
