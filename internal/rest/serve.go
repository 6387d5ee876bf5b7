// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rest

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mlnoga/doccolor/internal/decomposer"
	"github.com/mlnoga/doccolor/internal/docimage"
)

// MaxPixels caps the pixel count of an uploaded image postDecompose will
// process; zero means unlimited. The caller (cmd/doccolor) sets this from
// its -maxPixels flag before calling Serve.
var MaxPixels int64

// Serve exposes the decomposition API over HTTP via gin.
func Serve(port int) {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", getPing)
			v1.POST("/decompose", postDecompose)
		}
	}
	r.Run(":" + strconv.Itoa(port)) // listen and serve on 0.0.0.0:port
}

func getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

// decomposeResponse mirrors decomposer.Decomposer's read-only surface,
// with layers and masks as base64-encoded PNGs.
type decomposeResponse struct {
	NumClusters int      `json:"numClusters"`
	Peaks       []int    `json:"peaks"`
	Layers      []string `json:"layers"`
	Masks       []string `json:"masks"`
}

// postDecompose accepts a multipart "image" file plus optional form fields
// mirroring the CLI's -tolerance/-nopreprocess flags, runs the
// decomposition pipeline, and returns every layer and mask as base64 PNGs.
func postDecompose(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmp, err := os.CreateTemp("", "doccolor-upload-*.png")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := c.SaveUploadedFile(file, tmp.Name()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	src, err := docimage.Load(tmp.Name())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if MaxPixels > 0 && int64(src.Pixels()) > MaxPixels {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds maxPixels limit"})
		return
	}

	d, err := decomposer.New(src, optionsFromForm(c)...)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := decomposeResponse{NumClusters: d.NumClusters(), Peaks: d.Peaks()}
	for i, layer := range d.Layers() {
		layerPNG, err := encodePNG(layer.ToStdImage())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		maskPNG, err := encodePNG(d.Masks()[i].ToStdImage())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.Layers = append(resp.Layers, base64.StdEncoding.EncodeToString(layerPNG))
		resp.Masks = append(resp.Masks, base64.StdEncoding.EncodeToString(maskPNG))
	}
	c.JSON(http.StatusOK, resp)

	debug.FreeOSMemory()
}

func optionsFromForm(c *gin.Context) []decomposer.Option {
	var opts []decomposer.Option
	if v := c.PostForm("tolerance"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts = append(opts, decomposer.WithTolerance(n))
		}
	}
	if c.PostForm("nopreprocess") == "true" {
		opts = append(opts, decomposer.WithoutPreprocess())
	}
	return opts
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
