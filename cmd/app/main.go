package main

import (
	"go.uber.org/fx"

	"github.com/ajbarea/news-ai/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
