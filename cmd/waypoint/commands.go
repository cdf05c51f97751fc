package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/serializer"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <url>",
		Short: "Split a URL into navigation segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			segments := cfg.Serializer().Parse(waypoint.NormalizeURL(args[0]))
			return writeSegments(cmd.OutOrStdout(), segments)
		},
	}
}

func newSerializeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serialize <page[:key=value,...]>...",
		Short: "Build the URL for a root-first list of pages",
		Example: "  waypoint serialize list detail-page:id=12\n" +
			"  waypoint serialize home settings profile:user=ada",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			url, err := serializePages(cfg, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}

func newLinksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "List registered links in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSEGMENT\tLOAD\tDEFAULT HISTORY")
			for _, link := range cfg.Serializer().Links() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					link.Name, link.Segment, dash(link.LoadChildren), dash(strings.Join(link.DefaultHistory, ",")))
			}
			return w.Flush()
		},
	}
}

// serializePages binds a stand-in component to every link so pages can be
// serialized by name.
func serializePages(cfg *waypoint.Config, args []string) (string, error) {
	components := make(map[string]*nav.Component, len(cfg.Links))
	for _, link := range cfg.Links {
		components[link.Name] = &nav.Component{Name: link.Name}
	}
	if err := cfg.Bind(components); err != nil {
		return "", err
	}
	s := cfg.Serializer()

	path := make([]*serializer.Segment, 0, len(args))
	for _, arg := range args {
		name, params, err := parsePageArg(arg)
		if err != nil {
			return "", err
		}

		component, ok := components[name]
		if !ok {
			// not a page: a tab selector or a literal part
			path = append(path, &serializer.Segment{ID: name, Name: name})
			continue
		}

		segment := s.SerializeComponent(component, params)
		if segment == nil {
			return "", fmt.Errorf("page %q needs params for its segment", name)
		}
		path = append(path, segment)
	}
	return s.Serialize(path), nil
}

func parsePageArg(arg string) (string, nav.Params, error) {
	name, rawParams, found := strings.Cut(arg, ":")
	if !found || rawParams == "" {
		return name, nil, nil
	}

	params := nav.Params{}
	for _, pair := range strings.Split(rawParams, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return "", nil, fmt.Errorf("bad param %q in %q, want key=value", pair, arg)
		}
		params[key] = value
	}
	return name, params, nil
}

func writeSegments(out io.Writer, segments []*serializer.Segment) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNAME\tDATA\tDEFAULT HISTORY")
	for i, seg := range segments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i, seg.ID, seg.Name, formatParams(seg.Data), dash(strings.Join(seg.DefaultHistory, ",")))
	}
	return w.Flush()
}

func formatParams(params nav.Params) string {
	if len(params) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", k, params[k])
	}
	return strings.Join(pairs, ",")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
