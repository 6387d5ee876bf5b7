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

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mlnoga/doccolor/internal/decomposer"
	"github.com/mlnoga/doccolor/internal/docimage"
	"github.com/mlnoga/doccolor/internal/nlog"
	"github.com/mlnoga/doccolor/internal/rest"

	"github.com/pbnjay/memory"
)

const version = "0.1.0"

var totalMiBs = memory.TotalMemory() / 1024 / 1024

var port = flag.Int64("port", 8080, "port for serving HTTP API")
var chroot = flag.String("chroot", "", "directory to chroot and chdir to when serving HTTP. must be run as root")
var setuid = flag.Int64("setuid", -1, "user id number to setuid to when serving HTTP. must be run as root")

var out = flag.String("out", "out", "save decomposition results under `directory`")
var log = flag.String("log", "%auto", "save log output to `file`. %auto derives it from -out")
var visualize = flag.Bool("visualize", false, "also render plot outputs (TikZ sources and a Lab-plane raster)")

var tolerance = flag.Int64("tolerance", int64(decomposer.DefaultTolerance), "phi-histogram Gaussian smoothing kernel size, must be odd")
var noPreprocess = flag.Bool("nopreprocess", false, "skip saturation/lightness thresholding and hue smoothing")
var satThresh = flag.Int64("satThresh", 10, "zero saturation at or below this 0-255 value during preprocessing")
var lightThresh = flag.Int64("lightThresh", 50, "zero lightness at or below this 0-255 value during preprocessing")
var smoothHue = flag.Int64("smoothHue", 5, "Gaussian kernel size for hue smoothing during preprocessing, must be odd")
var seed = flag.Int64("seed", 1, "RNG seed for subsampling colors in the 3D RGB plot, 0=non-reproducible")

var truth = flag.String("truth", "", "for the quality command, directory of ground-truth mask PNGs to score against")

// maxPixels defaults to a budget scaled off available physical memory,
// the same guardrail role the teacher's stMemory default plays, sized so
// the color-count map and per-cluster layer/mask allocations stay well
// within RAM for the detected machine.
var maxPixels = flag.Int64("maxPixels", int64(totalMiBs)*1024*1024/12, "reject source images with more than this many pixels, 0=unlimited")

var yaw = flag.Float64("yaw", 135.0, "yaw angle in degrees for the 3D RGB plot")
var pitch = flag.Float64("pitch", 35.25, "pitch angle in degrees for the 3D RGB plot")

func main() {
	start := time.Now()
	flag.Usage = func() {
		fmt.Printf(`Doccolor Copyright (c) 2020 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (decompose|quality|serve|legal|version) image.png

Commands:
  decompose  Split an image into chromatic layers and masks
  quality    Score a prior decomposition's masks against ground truth
  serve      Serve the decomposition API over HTTP
  legal      Show license and attribution information
  version    Show version information

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *log == "%auto" {
		*log = filepath.Join(*out, "doccolor.log")
	}
	if *log != "" {
		if err := os.MkdirAll(filepath.Dir(*log), 0777); err == nil {
			if err := nlog.AlsoToFile(*log); err != nil {
				fmt.Printf("Unable to open log file %s: %s\n", *log, err.Error())
			}
		}
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		return
	}

	var err error
	switch args[0] {
	case "decompose":
		err = runDecompose(args[1:])

	case "quality":
		err = runQuality(args[1:])

	case "serve":
		nlog.Printf("Using %d MiB physical memory, serving on port %d\n", totalMiBs, *port)
		rest.MaxPixels = *maxPixels
		rest.MakeSandbox(*chroot, int(*setuid))
		rest.Serve(int(*port))

	case "legal":
		nlog.Print(legal)

	case "version":
		nlog.Printf("Version %s\n", version)

	case "help", "?":
		flag.Usage()

	default:
		nlog.Printf("Unknown command '%s'\n\n", args[0])
		flag.Usage()
		return
	}

	if err != nil {
		nlog.Printf("Error: %s\n", err.Error())
		nlog.Sync()
		os.Exit(1)
	}

	elapsed := time.Since(start).Round(time.Millisecond * 10)
	nlog.Printf("\nDone after %s\n", elapsed)
	nlog.Sync()
}

func opts() []decomposer.Option {
	o := []decomposer.Option{
		decomposer.WithTolerance(int(*tolerance)),
		decomposer.WithSaturationThreshold(uint8(*satThresh)),
		decomposer.WithLightnessThreshold(uint8(*lightThresh)),
		decomposer.WithHueSmoothKernel(int(*smoothHue)),
		decomposer.WithSeed(uint64(*seed)),
	}
	if *noPreprocess {
		o = append(o, decomposer.WithoutPreprocess())
	}
	return o
}

func runDecompose(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("decompose requires an input image path")
	}
	src, err := docimage.Load(args[0])
	if err != nil {
		return err
	}
	if err := checkMaxPixels(src); err != nil {
		return err
	}

	d, err := decomposer.New(src, opts()...)
	if err != nil {
		return err
	}
	nlog.Printf("%s\n", d.String())

	if err := os.MkdirAll(*out, 0777); err != nil {
		return err
	}
	for i, layer := range d.Layers() {
		if err := docimage.Save(filepath.Join(*out, fmt.Sprintf("layer%02d.png", i)), layer); err != nil {
			return err
		}
		if err := docimage.SaveMask(filepath.Join(*out, fmt.Sprintf("mask%02d.png", i)), d.Masks()[i]); err != nil {
			return err
		}
	}

	if *visualize {
		if err := writeText(filepath.Join(*out, "plot3d.tex"), d.Plot3DRGB(*yaw, *pitch)); err != nil {
			return err
		}
		if err := writeText(filepath.Join(*out, "plot1d_phi.tex"), d.Plot1DPhi()); err != nil {
			return err
		}
		if err := writeText(filepath.Join(*out, "plot1d_clusters.tex"), d.Plot1DClusters()); err != nil {
			return err
		}
		if err := docimage.Save(filepath.Join(*out, "plot2d_lab.png"), d.Plot2DLab()); err != nil {
			return err
		}
	}
	return nil
}

func runQuality(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("quality requires an input image path")
	}
	if *truth == "" {
		return fmt.Errorf("quality requires -truth directory")
	}

	src, err := docimage.Load(args[0])
	if err != nil {
		return err
	}
	if err := checkMaxPixels(src); err != nil {
		return err
	}
	d, err := decomposer.New(src, opts()...)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(*truth)
	if err != nil {
		return err
	}
	var truthMasks []*docimage.Mask
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			continue
		}
		m, err := docimage.LoadMask(filepath.Join(*truth, e.Name()))
		if err != nil {
			return err
		}
		truthMasks = append(truthMasks, m)
	}

	pq := d.Quality(truthMasks)
	nlog.Printf("Panoptic quality: %g\n", pq)
	return nil
}

func writeText(path, content string) error {
	return os.WriteFile(path, []byte(content), 0666)
}

func checkMaxPixels(src *docimage.Image) error {
	if *maxPixels <= 0 {
		return nil
	}
	if int64(src.Pixels()) > *maxPixels {
		return fmt.Errorf("image has %d pixels, exceeding -maxPixels=%d", src.Pixels(), *maxPixels)
	}
	return nil
}
