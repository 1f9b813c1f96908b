// Copyright 2025 Blorptools
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package blend

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/blorptools/blorpify/internal/domains"
	"github.com/blorptools/blorpify/internal/utils/logger"
	"github.com/blorptools/blorpify/pkg/transformers"
)

var (
	Cmd = &cobra.Command{
		Use:   "blend x y",
		Short: "combine two numbers as (x + y) * x - y",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}

			if err := run(args); err != nil {
				log.Fatal().Err(err).Msg("cannot compute blend")
			}
		},
	}
	Config  = domains.NewConfig()
	numeric bool
)

func run(args []string) error {
	if numeric {
		x, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf(`cannot parse operand "%s": %w`, args[0], err)
		}
		y, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf(`cannot parse operand "%s": %w`, args[1], err)
		}
		fmt.Printf("blend: %s\n", transformers.BlendNumeric(x, y).String())
		return nil
	}

	xi, errX := strconv.ParseInt(args[0], 10, 64)
	yi, errY := strconv.ParseInt(args[1], 10, 64)
	if errX == nil && errY == nil {
		fmt.Printf("blend: %d\n", transformers.Blend(xi, yi))
		return nil
	}

	xf, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf(`cannot parse operand "%s": %w`, args[0], err)
	}
	yf, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf(`cannot parse operand "%s": %w`, args[1], err)
	}
	fmt.Printf("blend: %g\n", transformers.Blend(xf, yf))
	return nil
}

func init() {
	Cmd.Flags().BoolVarP(&numeric, "numeric", "n", false, "use arbitrary precision decimal arithmetic")
}
