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

package list_transformers

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/blorptools/blorpify/internal/domains"
	"github.com/blorptools/blorpify/internal/transformers/utils"
	"github.com/blorptools/blorpify/internal/utils/logger"
	stringsUtils "github.com/blorptools/blorpify/internal/utils/strings"
)

var (
	Cmd = &cobra.Command{
		Use:   "list-transformers",
		Short: "list of the registered transformers with documentation",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			if err := run(args); err != nil {
				log.Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
	format string
)

const (
	JsonFormatName = "json"
	TextFormatName = "text"

	descriptionColumnWidth = 60
)

func run(transformerNames []string) error {
	var err error
	switch format {
	case JsonFormatName:
		err = listTransformersJson(utils.DefaultTransformerRegistry, transformerNames)
	case TextFormatName:
		err = listTransformersText(utils.DefaultTransformerRegistry, transformerNames)
	default:
		return fmt.Errorf(`unknown format %s`, format)
	}
	if err != nil {
		return fmt.Errorf("error listing transformers: %w", err)
	}

	return nil
}

func listTransformersJson(registry *utils.TransformerRegistry, transformerNames []string) error {
	var transformers []*utils.TransformerDefinition

	if len(transformerNames) > 0 {
		for _, name := range transformerNames {
			def, ok := registry.M[name]
			if ok {
				transformers = append(transformers, def)
			} else {
				return fmt.Errorf("unknown transformer name \"%s\"", name)
			}
		}
	} else {
		for _, def := range registry.M {
			transformers = append(transformers, def)
		}
	}

	if err := json.NewEncoder(os.Stdout).Encode(transformers); err != nil {
		return err
	}
	return nil
}

func listTransformersText(registry *utils.TransformerRegistry, transformerNames []string) error {
	var data [][]string
	table := tablewriter.NewWriter(os.Stdout)
	var names []string
	if len(transformerNames) > 0 {
		for _, name := range transformerNames {
			_, ok := registry.M[name]
			if ok {
				names = append(names, name)
			} else {
				return fmt.Errorf("unknown transformer name \"%s\"", name)
			}
		}
	} else {
		for name := range registry.M {
			names = append(names, name)
		}
		slices.Sort(names)
	}

	for _, name := range names {
		def := registry.M[name]
		description := stringsUtils.WrapString(def.Properties.Description, descriptionColumnWidth)
		data = append(data, []string{def.Properties.Name, "description", description, "", ""})
		for _, p := range def.Parameters {
			data = append(data, []string{def.Properties.Name, "parameters", p.Name, "description",
				stringsUtils.WrapString(p.Description, descriptionColumnWidth)})
			data = append(data, []string{def.Properties.Name, "parameters", p.Name, "required",
				strconv.FormatBool(p.Required)})
			if p.DefaultValue != nil {
				data = append(data, []string{def.Properties.Name, "parameters", p.Name, "default",
					string(p.DefaultValue)})
			}
		}
	}
	table.AppendBulk(data)
	table.SetRowLine(true)
	table.SetAutoMergeCellsByColumnIndex([]int{0, 1, 2})
	table.Render()

	return nil
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", TextFormatName, "output format [text|json]")
}
