// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command perft runs the move generator's leaf-count benchmark over a
// FEN at increasing depths, printing nodes and nodes/sec per depth and,
// with -chart, an HTML bar chart of the same.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/kestrelchess/core/internal/perft"
	"github.com/kestrelchess/core/position"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN of the position to run perft on")
	depth := flag.Int("depth", 5, "maximum depth to run perft to")
	divide := flag.Bool("divide", false, "print a per-move node-count breakdown at the final depth")
	chart := flag.Bool("chart", false, "render an HTML bar chart of nodes/sec per depth to perft-chart.html")
	flag.Parse()

	p, err := position.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}

	bar := progressbar.NewOptions(
		*depth,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("depth"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
	)

	var depths []string
	var rates []opts.BarData

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := perft.Perft(p, d)
		elapsed := time.Since(start)

		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("depth %2d: %12d nodes  %10.0f nps  %v\n", d, nodes, nps, elapsed)

		depths = append(depths, fmt.Sprintf("%d", d))
		rates = append(rates, opts.BarData{Value: nps})

		_ = bar.Add(1)
	}
	_ = bar.Close()

	if *divide {
		fmt.Printf("\ndivide at depth %d:\n", *depth)
		for move, nodes := range perft.Divide(p, *depth) {
			fmt.Printf("  %-6s %d\n", move, nodes)
		}
	}

	if *chart {
		bar := charts.NewBar()
		bar.SetXAxis(depths).AddSeries("nodes/sec", rates)

		f, err := os.Create("perft-chart.html")
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		if err := bar.Render(f); err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(1)
		}
	}
}
