package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"moviesearch/internal/core/catalog"
	"moviesearch/internal/core/movie"
	perr "moviesearch/internal/platform/errors"
	"moviesearch/internal/platform/net/http/bind"
	pstrings "moviesearch/internal/platform/strings"
	moviesdom "moviesearch/internal/services/api/movies/domain"
	catalogsvc "moviesearch/internal/services/catalog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func load(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	return catalogsvc.File{Path: path}.Load(cmd.Context())
}

func engine(cmd *cobra.Command) (*movie.Engine, error) {
	loc, _ := cmd.Flags().GetString("locale")
	tag, err := language.Parse(loc)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "bad locale %q", loc)
	}
	return movie.NewEngine(tag), nil
}

func asJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func searchCmd() *cobra.Command {
	var (
		in     moviesdom.SearchInput
		mpaa   []string
		genres []string
		bounds = map[string]**float64{
			"imdb-min":   &in.IMDBMin,
			"imdb-max":   &in.IMDBMax,
			"rotten-min": &in.RottenMin,
			"rotten-max": &in.RottenMax,
		}
		vals = map[string]*float64{}
	)
	cmd := &cobra.Command{
		Use:   "search [terms]",
		Short: "Print the movies matching every given filter, in catalog order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				in.Search = args[0]
			}
			in.MPAA = pstrings.SplitCSV(mpaa...)
			in.Genre = pstrings.SplitCSV(genres...)
			for name, dst := range bounds {
				if cmd.Flags().Changed(name) {
					*dst = vals[name]
				}
			}
			if err := bind.Validate(in); err != nil {
				return err
			}

			cat, err := load(cmd)
			if err != nil {
				return err
			}
			eng, err := engine(cmd)
			if err != nil {
				return err
			}
			out := []moviesdom.Movie{}
			for m := range eng.Search(cat.All(), in.Criteria()) {
				out = append(out, moviesdom.FromMovie(m))
			}
			if asJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), moviesdom.MovieList{Items: out, Total: len(out)})
			}
			return writeTable(cmd.OutOrStdout(), out)
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&mpaa, "mpaa", nil, "MPAA ratings to keep (repeat or comma separate)")
	f.StringSliceVar(&genres, "genre", nil, "major genres to keep (repeat or comma separate)")
	for _, name := range []string{"imdb-min", "imdb-max", "rotten-min", "rotten-max"} {
		vals[name] = new(float64)
		f.Float64Var(vals[name], name, 0, "inclusive "+name+" rating")
	}
	return cmd
}

func facetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "Print the distinct MPAA ratings and genres",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := load(cmd)
			if err != nil {
				return err
			}
			f := moviesdom.Facets{MPAARatings: cat.MPAARatings(), Genres: cat.Genres()}
			if asJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), f)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "mpaa:   %v\n", f.MPAARatings)
			fmt.Fprintf(w, "genres: %v\n", f.Genres)
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog file against the catalog schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := load(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d movies, snapshot %s\n", cat.Len(), cat.ID())
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, ms []moviesdom.Movie) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tMPAA\tGENRE\tIMDB\tROTTEN")
	for _, m := range ms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			pstrings.Deref(m.Title), pstrings.Deref(m.MPAARating), pstrings.Deref(m.MajorGenre),
			num(m.IMDBRating), num(m.RottenTomatoesRating))
	}
	fmt.Fprintf(tw, "\n%d movies\n", len(ms))
	return tw.Flush()
}

func num(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
