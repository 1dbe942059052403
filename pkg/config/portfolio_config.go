package config

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/decker502/folio/pkg/utils"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPortfolioPath 嵌入的作品集内容
const DefaultPortfolioPath = "data/portfolio.yaml"

// IconDir 内置图标目录
const IconDir = "data/icons"

// ContentFormat 内容文件格式
type ContentFormat int

const (
	// FormatYAML YAML 格式（默认）
	FormatYAML ContentFormat = iota
	// FormatTOML TOML 格式
	FormatTOML
)

// FormatFromPath 根据扩展名判断内容格式，未知扩展名按 YAML 处理
func FormatFromPath(path string) ContentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Portfolio 作品集内容
//
// 每个字段对应一个展示区块，区块之间没有数据依赖。
// Markdown 字段（Owner.Intro、Project.Description 等）在渲染时解析。
type Portfolio struct {
	Owner        Owner         `yaml:"owner" toml:"owner"`
	NavLinks     []NavLink     `yaml:"navLinks" toml:"navLinks"`
	Services     []Service     `yaml:"services" toml:"services"`
	Technologies []Technology  `yaml:"technologies" toml:"technologies"`
	Experiences  []Experience  `yaml:"experiences" toml:"experiences"`
	Projects     []Project     `yaml:"projects" toml:"projects"`
	Testimonials []Testimonial `yaml:"testimonials" toml:"testimonials"`
	Contact      Contact       `yaml:"contact" toml:"contact"`
}

// Owner 作品集主人
type Owner struct {
	Name string `yaml:"name" toml:"name"`
	Role string `yaml:"role" toml:"role"`
	// Intro 关于区块正文（Markdown）
	Intro string `yaml:"intro" toml:"intro"`
}

// NavLink 导航链接，ID 必须是 SectionIDs 之一
type NavLink struct {
	ID    string `yaml:"id" toml:"id"`
	Title string `yaml:"title" toml:"title"`
}

// Service 关于区块中的服务卡片
type Service struct {
	Title string `yaml:"title" toml:"title"`
	Icon  string `yaml:"icon" toml:"icon"`
}

// Technology 技术栈条目（以六棱柱"螺母"展示）
type Technology struct {
	Name string `yaml:"name" toml:"name"`
	Icon string `yaml:"icon" toml:"icon"`
	// Color 螺母颜色，缺省为金属灰 #bfbfbf
	Color string `yaml:"color" toml:"color"`
}

// Experience 经历时间线条目
type Experience struct {
	Title       string   `yaml:"title" toml:"title"`
	CompanyName string   `yaml:"companyName" toml:"companyName"`
	Icon        string   `yaml:"icon" toml:"icon"`
	IconBg      string   `yaml:"iconBg" toml:"iconBg"`
	Date        string   `yaml:"date" toml:"date"`
	Points      []string `yaml:"points" toml:"points"`
}

// Tag 项目标签
type Tag struct {
	Name string `yaml:"name" toml:"name"`
	// Color TagColors 中的名称或 #RRGGBB
	Color string `yaml:"color" toml:"color"`
}

// Project 作品卡片
type Project struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
	Tags        []Tag  `yaml:"tags" toml:"tags"`
	Image       string `yaml:"image" toml:"image"`
	// SourceCodeLink 仅作为文本展示
	SourceCodeLink string `yaml:"sourceCodeLink" toml:"sourceCodeLink"`
}

// Testimonial 推荐语
type Testimonial struct {
	Testimonial string `yaml:"testimonial" toml:"testimonial"`
	Name        string `yaml:"name" toml:"name"`
	Designation string `yaml:"designation" toml:"designation"`
	Company     string `yaml:"company" toml:"company"`
	Image       string `yaml:"image" toml:"image"`
}

// Contact 联系区块
type Contact struct {
	Heading string `yaml:"heading" toml:"heading"`
	Email   string `yaml:"email" toml:"email"`
	// Message 联系区块正文（Markdown）
	Message string `yaml:"message" toml:"message"`
}

// ParsePortfolio 解析作品集内容并校验
func ParsePortfolio(data []byte, format ContentFormat) (*Portfolio, error) {
	var p Portfolio
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse portfolio toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse portfolio yaml: %w", err)
		}
	}

	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio: %w", err)
	}
	return &p, nil
}

// LoadPortfolio 加载作品集内容，格式由扩展名决定
func LoadPortfolio(path string) (*Portfolio, error) {
	data, err := ReadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePortfolio(data, FormatFromPath(path))
}

// LoadPortfolioFile 加载用户指定的内容文件（磁盘优先，见 ReadLocalFile）
func LoadPortfolioFile(path string) (*Portfolio, error) {
	data, err := ReadLocalFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePortfolio(data, FormatFromPath(path))
}

// IconPath 解析图标引用
//
// 带扩展名的值按图片路径使用；否则视为 IconDir 下的 PNG 名称，
// 例如 "plc" -> "data/icons/plc.png"。空值返回空串。
func IconPath(icon string) string {
	switch {
	case icon == "":
		return ""
	case filepath.Ext(icon) != "":
		return icon
	default:
		return IconDir + "/" + icon + ".png"
	}
}

// applyDefaults 填充可选字段
func (p *Portfolio) applyDefaults() {
	if len(p.NavLinks) == 0 {
		p.NavLinks = []NavLink{
			{ID: "about", Title: "About"},
			{ID: "work", Title: "Work"},
			{ID: "contact", Title: "Contact"},
		}
	}
	for i := range p.Technologies {
		if p.Technologies[i].Color == "" {
			p.Technologies[i].Color = "#bfbfbf"
		}
	}
	for i := range p.Experiences {
		if p.Experiences[i].IconBg == "" {
			p.Experiences[i].IconBg = "#383E56"
		}
	}
	if p.Contact.Heading == "" {
		p.Contact.Heading = "Contact."
	}
}

// Validate 验证内容有效性
//
// 检查：
//   - 主人名称不能为空
//   - 导航链接 ID 唯一且指向已知区块
//   - 颜色字段可以解析
func (p *Portfolio) Validate() error {
	if strings.TrimSpace(p.Owner.Name) == "" {
		return fmt.Errorf("owner.name is required")
	}

	seen := make(map[string]bool, len(p.NavLinks))
	for i, link := range p.NavLinks {
		if link.ID == "" {
			return fmt.Errorf("navLinks[%d].id is required", i)
		}
		if seen[link.ID] {
			return fmt.Errorf("navLinks[%d].id %q is duplicated", i, link.ID)
		}
		seen[link.ID] = true
		if !IsSectionID(link.ID) {
			return fmt.Errorf("navLinks[%d].id %q is not a section (%s)", i, link.ID, strings.Join(SectionIDs, ", "))
		}
		if link.Title == "" {
			return fmt.Errorf("navLinks[%d].title is required", i)
		}
	}

	for i, tech := range p.Technologies {
		if tech.Name == "" {
			return fmt.Errorf("technologies[%d].name is required", i)
		}
		if _, err := utils.ParseHexColor(tech.Color); err != nil {
			return fmt.Errorf("technologies[%d].color: %w", i, err)
		}
	}

	for i, exp := range p.Experiences {
		if exp.Title == "" {
			return fmt.Errorf("experiences[%d].title is required", i)
		}
		if _, err := utils.ParseHexColor(exp.IconBg); err != nil {
			return fmt.Errorf("experiences[%d].iconBg: %w", i, err)
		}
	}

	for i, project := range p.Projects {
		if project.Name == "" {
			return fmt.Errorf("projects[%d].name is required", i)
		}
		for j, tag := range project.Tags {
			if _, ok := TagColor(tag.Color); !ok {
				return fmt.Errorf("projects[%d].tags[%d].color %q is unknown", i, j, tag.Color)
			}
		}
	}
	return nil
}

// IsSectionID 判断是否为已知区块 ID
func IsSectionID(id string) bool {
	for _, s := range SectionIDs {
		if s == id {
			return true
		}
	}
	return false
}

// TagColor 解析标签颜色：TagColors 中的名称、#RRGGBB 或空（次要文字色）
func TagColor(name string) (color.RGBA, bool) {
	if name == "" {
		return ColorSecondary, true
	}
	if c, ok := TagColors[name]; ok {
		return c, true
	}
	c, err := utils.ParseHexColor(name)
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}
