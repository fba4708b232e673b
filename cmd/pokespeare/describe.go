package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/pokespeare/internal/apierror"
	"github.com/at-ishikawa/pokespeare/internal/logging"
	"github.com/at-ishikawa/pokespeare/internal/pokemon"
	"github.com/at-ishikawa/pokespeare/internal/species/pokeapi"
	"github.com/at-ishikawa/pokespeare/internal/translation/funtranslations"
)

var errRateLimited = errors.New("the translation API is rate limited, try again later")

func newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <pokemon>",
		Short: "Print a Shakespearean description of a Pokémon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if _, err := logging.Setup(cmd.ErrOrStderr(), logLevel, cfg.Log.Level); err != nil {
				return err
			}

			translationClient := funtranslations.NewClient(cfg.FunTranslations.BaseURL, cfg.HTTPClient.Timeout)
			defer func() {
				_ = translationClient.Close()
			}()
			describer := pokemon.NewDescriber(
				pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.HTTPClient.Timeout),
				translationClient,
			)

			description, err := describer.Describe(cmd.Context(), args[0])
			if err != nil {
				if !errors.Is(err, pokemon.ErrSpeciesLookup) && apierror.IsRateLimited(err) {
					return fmt.Errorf("%w: %w", errRateLimited, err)
				}
				return fmt.Errorf("describer.Describe(%s) > %w", args[0], err)
			}
			return printDescription(cmd.OutOrStdout(), description)
		},
	}
}

func printDescription(w io.Writer, description pokemon.Description) error {
	if _, err := color.New(color.Bold, color.FgYellow).Fprintln(w, description.Name); err != nil {
		return fmt.Errorf("failed to print the name: %w", err)
	}
	if _, err := color.New(color.Italic).Fprintln(w, description.Description); err != nil {
		return fmt.Errorf("failed to print the description: %w", err)
	}
	return nil
}
