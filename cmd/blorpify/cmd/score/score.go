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

package score

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blorptools/blorpify/internal/domains"
	"github.com/blorptools/blorpify/internal/utils/logger"
	"github.com/blorptools/blorpify/pkg/transformers"
)

var (
	Cmd = &cobra.Command{
		Use:   "score a b",
		Short: "compute the bounded bit-mixing score of two integers",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}

			if err := run(args); err != nil {
				log.Fatal().Err(err).Msg("cannot compute score")
			}
		},
	}
	Config = domains.NewConfig()
)

func run(args []string) error {
	a, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf(`cannot parse operand "%s": %w`, args[0], err)
	}
	b, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf(`cannot parse operand "%s": %w`, args[1], err)
	}

	mixer := transformers.NewScoreMixer(Config.Score.Bias)
	fmt.Printf("score: %d\n", mixer.Mix(int32(a), int32(b)))
	return nil
}

func init() {
	Cmd.Flags().Int32P("bias", "b", domains.DefaultScoreBias, "bias added to the xor of the operands")

	if err := viper.BindPFlag("score.bias", Cmd.Flags().Lookup("bias")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
