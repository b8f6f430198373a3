/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command godist draws samples from a described distribution and
// prints them, one per line, after a summary of the distribution
// properties. The distribution comes either from a YAML scenario file
// or from command line flags.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/godist-project/godist/config"
	"github.com/godist-project/godist/mtrand"
	"github.com/godist-project/godist/params"
	"github.com/godist-project/godist/sample"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "path to a YAML scenario file")
		dist         = flag.String("dist", "", "distribution description, general or round-trip format")
		seed         = flag.Uint("seed", 0, "generator seed")
		count        = flag.Int("count", 10, "number of samples to draw")
		entropy      = flag.Bool("entropy", false, "seed from system entropy instead of -seed")
	)
	flag.Parse()

	if err := run(*scenarioPath, *dist, uint32(*seed), *count, *entropy); err != nil {
		fmt.Fprintf(os.Stderr, "godist: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioPath, dist string, seed uint32, count int, entropy bool) error {
	scenario := &config.Scenario{Seed: seed, Count: count, Distribution: dist}
	if scenarioPath != "" {
		loaded, err := config.Load(scenarioPath)
		if err != nil {
			return err
		}
		scenario = loaded
	}

	p, err := scenario.Parameters()
	if err != nil {
		return err
	}
	s, err := sample.FromParameters(p)
	if err != nil {
		return err
	}

	var g *mtrand.Generator
	if entropy {
		g = mtrand.NewFromEntropy(scenario.Config())
	} else {
		g = mtrand.NewWithConfig(scenario.Seed, scenario.Config())
	}

	desc, err := params.Format(p, params.FormatGeneral)
	if err != nil {
		return err
	}
	fmt.Printf("# %s\n", desc)
	fmt.Printf("# seed=%d count=%d\n", g.Seed(), scenario.Count)
	props := s.Properties()
	fmt.Printf("# mean=%g median=%g variance=%g\n", props.Mean, props.Median, props.Variance)

	stream, err := s.Samples(g, scenario.Count)
	if err != nil {
		return err
	}
	for {
		v, ok := stream.Next()
		if !ok {
			break
		}
		fmt.Printf("%g\n", v)
	}
	return nil
}
