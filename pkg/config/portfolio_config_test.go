package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want ContentFormat
	}{
		{"data/portfolio.yaml", FormatYAML},
		{"content.YML", FormatYAML},
		{"content.toml", FormatTOML},
		{"/tmp/Content.TOML", FormatTOML},
		{"noext", FormatYAML},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

// TestLoadPortfolioFile 加载仓库中的 data/portfolio.yaml
func TestLoadPortfolioFile(t *testing.T) {
	p, err := LoadPortfolio("../../data/portfolio.yaml")
	if err != nil {
		t.Fatalf("LoadPortfolio() error: %v", err)
	}

	if p.Owner.Name == "" {
		t.Error("Owner.Name should not be empty")
	}
	if len(p.NavLinks) != 3 {
		t.Errorf("NavLinks: got %d, want 3", len(p.NavLinks))
	}
	if len(p.Technologies) != 6 {
		t.Errorf("Technologies: got %d, want 6", len(p.Technologies))
	}
	if len(p.Experiences) != 4 {
		t.Errorf("Experiences: got %d, want 4", len(p.Experiences))
	}
	if got := p.Experiences[0].CompanyName; got != "Krones Contiform" {
		t.Errorf("Experiences[0].CompanyName: got %q", got)
	}
	if len(p.Projects) != 3 || len(p.Projects[0].Tags) != 3 {
		t.Errorf("Projects/tags mismatch: %+v", p.Projects)
	}
	// 缺省颜色被填充
	for _, tech := range p.Technologies {
		if tech.Color != "#bfbfbf" {
			t.Errorf("technology %q color: got %q, want #bfbfbf", tech.Name, tech.Color)
		}
	}
}

// TestParsePortfolioTOML TOML 格式与 YAML 字段一致
func TestParsePortfolioTOML(t *testing.T) {
	tomlData := `
[owner]
name = "Rick"
role = "Mechanic"

[[navLinks]]
id = "work"
title = "Work"

[[technologies]]
name = "PLC Logic"
icon = "plc"

[[experiences]]
title = "Labeler Mechanic"
companyName = "Krones Contiroll"
date = "Machine #3"
points = ["Precision alignment", "Glue application"]

[contact]
email = "rick@example.com"
`
	p, err := ParsePortfolio([]byte(tomlData), FormatTOML)
	if err != nil {
		t.Fatalf("ParsePortfolio(toml) error: %v", err)
	}

	if p.Owner.Name != "Rick" {
		t.Errorf("Owner.Name: got %q", p.Owner.Name)
	}
	if len(p.NavLinks) != 1 || p.NavLinks[0].ID != "work" {
		t.Errorf("NavLinks: got %+v", p.NavLinks)
	}
	if len(p.Experiences) != 1 || len(p.Experiences[0].Points) != 2 {
		t.Errorf("Experiences: got %+v", p.Experiences)
	}
	if p.Experiences[0].IconBg != "#383E56" {
		t.Errorf("IconBg default: got %q", p.Experiences[0].IconBg)
	}
	if p.Contact.Heading != "Contact." {
		t.Errorf("Contact.Heading default: got %q", p.Contact.Heading)
	}
}

// TestPortfolioDefaultNavLinks 未配置导航时使用默认链接
func TestPortfolioDefaultNavLinks(t *testing.T) {
	p, err := ParsePortfolio([]byte("owner:\n  name: Rick\n"), FormatYAML)
	if err != nil {
		t.Fatalf("ParsePortfolio() error: %v", err)
	}
	ids := make([]string, 0, len(p.NavLinks))
	for _, l := range p.NavLinks {
		ids = append(ids, l.ID)
	}
	if strings.Join(ids, ",") != "about,work,contact" {
		t.Errorf("default nav ids = %v", ids)
	}
}

func TestPortfolioValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"缺少名称", "owner:\n  name: ''\n", "owner.name"},
		{"未知区块", "owner: {name: R}\nnavLinks:\n  - {id: blog, title: Blog}\n", "not a section"},
		{"重复导航", "owner: {name: R}\nnavLinks:\n  - {id: work, title: W}\n  - {id: work, title: W2}\n", "duplicated"},
		{"导航缺标题", "owner: {name: R}\nnavLinks:\n  - {id: work}\n", "title is required"},
		{"技术颜色无效", "owner: {name: R}\ntechnologies:\n  - {name: X, color: shiny}\n", "technologies[0].color"},
		{"标签颜色未知", "owner: {name: R}\nprojects:\n  - name: P\n    tags:\n      - {name: go, color: gold-gradient}\n", "tags[0].color"},
		{"YAML 语法错误", "owner: [", "parse portfolio yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePortfolio([]byte(tt.yaml), FormatYAML)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

// TestLoadPortfolioFromDisk 非 data/ 路径从磁盘读取
func TestLoadPortfolioFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.toml")
	if err := os.WriteFile(path, []byte("[owner]\nname = \"Disk\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPortfolio(path)
	if err != nil {
		t.Fatalf("LoadPortfolio() error: %v", err)
	}
	if p.Owner.Name != "Disk" {
		t.Errorf("Owner.Name: got %q, want Disk", p.Owner.Name)
	}
}

func TestTagColor(t *testing.T) {
	if c, ok := TagColor("blue-text-gradient"); !ok || c != TagColors["blue-text-gradient"] {
		t.Errorf("named tag color lookup failed: %v %v", c, ok)
	}
	if _, ok := TagColor("#123456"); !ok {
		t.Error("hex tag color should be accepted")
	}
	if c, ok := TagColor(""); !ok || c != ColorSecondary {
		t.Error("empty tag color should fall back to ColorSecondary")
	}
	if _, ok := TagColor("sparkly"); ok {
		t.Error("unknown tag color should be rejected")
	}
}
