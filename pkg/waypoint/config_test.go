package waypoint

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
)

const tomlConfig = `
index_alias = "/list"

[location]
strategy = "hash"

[[links]]
name = "list"

[[links]]
name = "detail-page"
segment = "detail/:id"
default_history = ["list"]

[[links]]
name = "profile"
segment = "profile/:user"
load_children = "./profile"
`

const yamlConfig = `
location:
  strategy: path
  base_href: /app/
links:
  - name: list
  - name: detail-page
    segment: detail/:id
    default_history: [list]
`

func TestParseConfigTOML(t *testing.T) {
	cfg, err := ParseConfig([]byte(tomlConfig), "toml")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.IndexAlias != "/list" || cfg.Location.Strategy != "hash" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Links) != 3 {
		t.Fatalf("links = %d, want 3", len(cfg.Links))
	}
	detail := cfg.Links[1]
	if detail.Segment != "detail/:id" || !reflect.DeepEqual(detail.DefaultHistory, []string{"list"}) {
		t.Errorf("detail link = %+v", detail)
	}
	if cfg.Links[2].LoadChildren != "./profile" {
		t.Errorf("profile link = %+v", cfg.Links[2])
	}
	if got := cfg.NewLocation("/").PrepareExternalURL("/list"); got != "#/list" {
		t.Errorf("PrepareExternalURL() = %q", got)
	}
}

func TestParseConfigYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte(yamlConfig), "yml")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if constants.ParseLocationStrategy(cfg.Location.Strategy) != constants.LocationStrategyPath {
		t.Errorf("strategy = %q", cfg.Location.Strategy)
	}
	if got := cfg.NewLocation("/").PrepareExternalURL("/list"); got != "/app/list" {
		t.Errorf("PrepareExternalURL() = %q", got)
	}
	if len(cfg.Links) != 2 || cfg.Links[1].Segment != "detail/:id" {
		t.Errorf("links = %+v", cfg.Links)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"format", "", "json"},
		{"syntax", "[[links]\nname=", "toml"},
		{"missing name", "[[links]]\nsegment = \"x\"\n", "toml"},
		{"duplicate", "links:\n  - name: a\n  - name: a\n", "yaml"},
	}

	for _, tt := range tests {
		if _, err := ParseConfig([]byte(tt.data), tt.format); err == nil {
			t.Errorf("%s: ParseConfig() error = nil", tt.name)
		}
	}
}

func TestLoadConfigAndBind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.toml")
	if err := os.WriteFile(path, []byte(tomlConfig), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	list := &nav.Component{Name: "list"}
	detail := &nav.Component{Name: "detail-page"}
	if err := cfg.Bind(map[string]*nav.Component{"list": list, "detail-page": detail}); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if err := cfg.Bind(map[string]*nav.Component{"nope": list}); !errors.Is(err, ErrInvalidLink) {
		t.Errorf("Bind(nope) error = %v, want ErrInvalidLink", err)
	}

	s := cfg.Serializer()
	if seg := s.SerializeComponent(detail, nav.Params{"id": 3}); seg == nil || seg.ID != "detail/3" {
		t.Errorf("SerializeComponent() = %+v", seg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig(missing) error = nil")
	}
}
