// Package web 内嵌的浏览器页面
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

//go:embed static/index.html
var IndexHTML []byte

// Assets 以 static 目录为根的静态资源
func Assets() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
