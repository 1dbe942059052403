// Package main validates portfolio content and scene config files.
//
// Usage:
//
//	go run ./cmd/check_content [--scene data/scene.yaml] content.yaml [more.toml ...]
//
// Each content file is parsed (YAML or TOML by extension) and validated the
// same way the app does on startup and on hot reload. A summary is printed for
// every file; the exit code is 1 if any file fails.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/decker502/folio/internal/richtext"
	"github.com/decker502/folio/pkg/config"
)

var sceneFlag = flag.String("scene", "", "Scene config file to validate as well")

func main() {
	flag.Parse()

	failed := false
	if *sceneFlag != "" {
		cfg, err := config.LoadSceneConfigFile(*sceneFlag)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", *sceneFlag, err)
			failed = true
		} else {
			fmt.Printf("ok   %s: mesh=%s detail=%d smoothing=%.2f pointerFactor=%.2f\n",
				*sceneFlag, cfg.Mesh.Kind, cfg.Mesh.Detail, cfg.Rotation.Smoothing, cfg.Rotation.PointerFactor)
		}
	}

	paths := flag.Args()
	if len(paths) == 0 && *sceneFlag == "" {
		paths = []string{config.DefaultPortfolioPath}
	}
	for _, path := range paths {
		p, err := config.LoadPortfolioFile(path)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("ok   %s: owner=%q nav=%d services=%d tech=%d experience=%d projects=%d testimonials=%d\n",
			path, p.Owner.Name, len(p.NavLinks), len(p.Services), len(p.Technologies),
			len(p.Experiences), len(p.Projects), len(p.Testimonials))
		fmt.Printf("     intro: %d blocks, contact message: %d blocks\n",
			len(richtext.Parse(p.Owner.Intro)), len(richtext.Parse(p.Contact.Message)))
		if missing := missingIcons(p); len(missing) > 0 {
			// 缺失的图标在页面上以首字母代替，不算失败
			fmt.Printf("     warn: icons not found: %v\n", missing)
		}
	}

	if failed {
		os.Exit(1)
	}
}

// missingIcons 返回磁盘上找不到的图标路径
func missingIcons(p *config.Portfolio) []string {
	var refs []string
	for _, svc := range p.Services {
		refs = append(refs, svc.Icon)
	}
	for _, tech := range p.Technologies {
		refs = append(refs, tech.Icon)
	}
	for _, exp := range p.Experiences {
		refs = append(refs, exp.Icon)
	}

	var missing []string
	for _, ref := range refs {
		path := config.IconPath(ref)
		if path == "" || slices.Contains(missing, path) {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}
