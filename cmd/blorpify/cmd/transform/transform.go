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

package transform

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/blorptools/blorpify/internal/batch"
	"github.com/blorptools/blorpify/internal/domains"
	"github.com/blorptools/blorpify/internal/pipeline"
	"github.com/blorptools/blorpify/internal/transformers/utils"
	"github.com/blorptools/blorpify/internal/utils/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "transform",
		Short: "apply the configured transformer chain to a batch of records",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}

			if err := run(cmd.Context()); err != nil {
				log.Fatal().Err(err).Msg("cannot run transformation")
			}
		},
	}
	Config = domains.NewConfig()

	inputFile  string
	sampleSize int
)

func run(ctx context.Context) error {
	runId := uuid.New().String()

	records, err := loadRecords()
	if err != nil {
		return fmt.Errorf("error loading records: %w", err)
	}

	bt, warnings, err := buildBatchTransformer(ctx)
	if err != nil {
		return fmt.Errorf("error building batch transformer: %w", err)
	}
	for _, w := range warnings {
		entry := log.Warn()
		if w.Severity == utils.ErrorValidationSeverity {
			entry = log.Error()
		}
		entry.Str("RunId", runId).
			Any("ValidationWarning", w).
			Msg("received validation warning")
	}
	if warnings.IsFatal() {
		return fmt.Errorf("fatal validation warnings were received")
	}

	if err = bt.TransformBatch(ctx, records); err != nil {
		return fmt.Errorf("error transforming batch: %w", err)
	}

	for i := range records {
		fmt.Printf("%s -> count=%d magnitude=%g\n", records[i].Label, records[i].Count, records[i].Magnitude)
	}
	fmt.Printf("processed: %t\n", bt.IsProcessed())

	digest, err := records.Digest()
	if err != nil {
		return fmt.Errorf("error computing batch digest: %w", err)
	}
	log.Info().
		Str("RunId", runId).
		Int("Records", len(records)).
		Uint32("Digest", digest).
		Msg("transformation completed")
	return nil
}

// loadRecords resolves the batch source: generated samples win over the
// records file, the records file wins over inline config records.
func loadRecords() (batch.Batch, error) {
	if sampleSize == 0 {
		sampleSize = Config.Transform.Sample
	}
	if sampleSize > 0 {
		return batch.Sample(sampleSize)
	}

	if inputFile == "" {
		inputFile = Config.Transform.InputFile
	}
	if inputFile != "" {
		return batch.LoadFromFile(inputFile)
	}

	return Config.Transform.Records, nil
}

func buildBatchTransformer(ctx context.Context) (*pipeline.BatchTransformer, utils.ValidationWarnings, error) {
	if len(Config.Transform.Transformers) == 0 {
		return pipeline.NewScaleBatchTransformer(Config.Transform.ScaleFactor), nil, nil
	}
	return pipeline.NewBatchTransformerFromConfig(ctx, utils.DefaultTransformerRegistry, Config.Transform.Transformers)
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "records file in yaml or json format")
	Cmd.Flags().IntVarP(&sampleSize, "sample", "s", 0, "generate the provided number of fake records instead of reading input")
}
