package catalog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rickgao/auction-stats/internal/model"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Printer renders realm groups as they are visited.
type Printer interface {
	Print(group model.RealmGroup) error
	Flush() error
}

// NewPrinter returns the printer for format.
func NewPrinter(format string, w io.Writer) (Printer, error) {
	switch format {
	case FormatText, "":
		return &TextPrinter{w: w}, nil
	case FormatYAML:
		return &YAMLPrinter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}

// TextPrinter writes a "- <realm> -" header per member realm followed by
// one "<group id> / <ah id> - <ah name>" line per auction house.
type TextPrinter struct {
	w io.Writer
}

func (p *TextPrinter) Print(group model.RealmGroup) error {
	for _, realm := range group.Realms {
		if _, err := fmt.Fprintf(p.w, "- %s -\n", realm.Name); err != nil {
			return err
		}
		for _, ah := range group.AuctionHouses {
			if _, err := fmt.Fprintf(p.w, "%d / %d - %s\n", group.ID, ah.ID, ah.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *TextPrinter) Flush() error { return nil }

// YAMLPrinter collects every group and writes an auction_houses block that
// can be pasted into the config file. Realm and auction house names are
// emitted as comments.
type YAMLPrinter struct {
	w     io.Writer
	items []*yaml.Node
}

func (p *YAMLPrinter) Print(group model.RealmGroup) error {
	names := make([]string, len(group.Realms))
	for i, r := range group.Realms {
		names[i] = r.Name
	}
	realms := strings.Join(names, ", ")

	for _, ah := range group.AuctionHouses {
		entry := &yaml.Node{
			Kind:        yaml.MappingNode,
			HeadComment: fmt.Sprintf("%s: %s", realms, ah.Name),
			Content: []*yaml.Node{
				scalar("realm"), intScalar(group.ID),
				scalar("auction_house"), intScalar(ah.ID),
			},
		}
		p.items = append(p.items, entry)
	}
	return nil
}

func (p *YAMLPrinter) Flush() error {
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalar("auction_houses"),
			{Kind: yaml.SequenceNode, Content: p.items},
		},
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func intScalar(n int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(n)}
}
