package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khaeru/iamc-sdmx-demo/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [schema.yaml]",
	Short: "Load a schema document and report every semantic violation",
	Long: `Load a schema document and check its semantic rules: every dimension and
attribute must reference a declared concept, and variable labels must be
unique. All violations are reported in one pass; the command exits non-zero
if any are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "iamc.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		doc, err := schema.LoadFile(path)
		if err != nil {
			return err
		}

		result := doc.Validate()
		if result.OK() {
			cmd.Printf("%s: OK (%d concepts, %d dimensions, %d attributes, %d variables)\n",
				path, len(doc.Concepts), doc.Dimensions.Len(), doc.Attributes.Len(), len(doc.Variables))
			return nil
		}

		for _, v := range result.Violations {
			cmd.Printf("%s: %s: %s\n", path, v.Kind, v.Message)
		}
		return fmt.Errorf("%s: %d violation(s) found", path, len(result.Violations))
	},
}
