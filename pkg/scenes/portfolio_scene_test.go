package scenes

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/game"
)

func loadTestPortfolio(t *testing.T) *config.Portfolio {
	t.Helper()
	p, err := config.LoadPortfolio("../../data/portfolio.yaml")
	if err != nil {
		t.Fatalf("LoadPortfolio() error: %v", err)
	}
	return p
}

func newTestPortfolio(t *testing.T, in *fakeInput, opts ...PortfolioOption) *PortfolioScene {
	t.Helper()
	s, err := NewPortfolioScene(game.NewResourceManager(), loadTestPortfolio(t), in, opts...)
	if err != nil {
		t.Fatalf("NewPortfolioScene() error: %v", err)
	}
	return s
}

func TestNewPortfolioSceneRequiresContent(t *testing.T) {
	if _, err := NewPortfolioScene(game.NewResourceManager(), nil, nil); err == nil {
		t.Error("expected error for nil content")
	}
}

// TestPortfolioSectionOrder 导航栏之后依次为 about、experience、tech、work、contact
func TestPortfolioSectionOrder(t *testing.T) {
	s := newTestPortfolio(t, &fakeInput{})
	s.Mount()

	want := []string{"nav", "about", "experience", "tech", "work", "contact"}
	if got := s.Sections(); !slices.Equal(got, want) {
		t.Fatalf("Sections() = %v, want %v", got, want)
	}

	prev := -1.0
	for _, id := range config.SectionIDs {
		y, ok := s.Anchor(id)
		if !ok {
			t.Fatalf("missing anchor for %q", id)
		}
		if y <= prev {
			t.Errorf("anchor %q = %v, should be below previous %v", id, y, prev)
		}
		prev = y
	}
	if s.ContentHeight() <= config.WindowHeight {
		t.Errorf("ContentHeight() = %v, expected a scrollable page", s.ContentHeight())
	}
	if len(s.nuts) != 6 {
		t.Errorf("tech nuts = %d, want 6", len(s.nuts))
	}
}

// TestPortfolioJumpBeforeMount 挂载前选择的区块在挂载时立即定位
func TestPortfolioJumpBeforeMount(t *testing.T) {
	s := newTestPortfolio(t, &fakeInput{})
	if !s.JumpTo("work") {
		t.Fatal("JumpTo(work) should succeed")
	}
	s.Mount()

	want, _ := s.Anchor("work")
	want = math.Min(want, s.scroll().Max)
	if got := s.ScrollOffset(); got != want {
		t.Errorf("ScrollOffset() = %v, want %v", got, want)
	}
}

// TestPortfolioJumpSmooth 挂载后跳转平滑滚动
func TestPortfolioJumpSmooth(t *testing.T) {
	s := newTestPortfolio(t, &fakeInput{})
	s.Mount()

	s.JumpTo("experience")
	want, _ := s.Anchor("experience")
	want = math.Min(want, s.scroll().Max)

	s.Update(1.0 / 60)
	first := s.ScrollOffset()
	if first <= 0 || first >= want {
		t.Errorf("first frame offset = %v, want in (0, %v)", first, want)
	}
	for i := 0; i < 300; i++ {
		s.Update(1.0 / 60)
	}
	if got := s.ScrollOffset(); math.Abs(got-want) > 0.5 {
		t.Errorf("offset after 300 frames = %v, want ≈ %v", got, want)
	}
}

func TestPortfolioJumpUnknown(t *testing.T) {
	s := newTestPortfolio(t, &fakeInput{})
	s.Mount()
	if s.JumpTo("blog") {
		t.Error("JumpTo(blog) should fail")
	}
	if s.ScrollOffset() != 0 {
		t.Error("unknown section should not scroll")
	}
}

// TestPortfolioNavLinkClick 点击导航栏链接跳转到对应区块
func TestPortfolioNavLinkClick(t *testing.T) {
	in := &fakeInput{}
	s := newTestPortfolio(t, in)
	s.Mount()

	var x, y int
	found := false
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		b, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if b.Text == "Contact" {
			x, y = int(pos.X+b.Width/2), int(pos.Y+b.Height/2)
			found = true
		}
	}
	if !found {
		t.Fatal("Contact nav link not found")
	}

	in.state.X, in.state.Y = x, y
	in.state.HasPointer = true
	in.state.JustReleased = true
	s.Update(1.0 / 60)
	for i := 0; i < 300; i++ {
		s.Update(1.0 / 60)
	}

	want, _ := s.Anchor("contact")
	want = math.Min(want, s.scroll().Max)
	if got := s.ScrollOffset(); math.Abs(got-want) > 0.5 {
		t.Errorf("offset = %v, want ≈ %v", got, want)
	}
}

// TestPortfolioWheelScroll 滚轮向下滚动，顶部不能继续向上
func TestPortfolioWheelScroll(t *testing.T) {
	in := &fakeInput{}
	s := newTestPortfolio(t, in)
	s.Mount()

	in.state.WheelY = 1
	s.Update(1.0 / 60)
	if got := s.scroll().Target; got != 0 {
		t.Errorf("target after wheel up at top = %v, want 0", got)
	}

	in.state.WheelY = -2
	s.Update(1.0 / 60)
	if got := s.scroll().Target; got != 2*config.ScrollWheelStep {
		t.Errorf("target after wheel down = %v, want %v", got, 2*config.ScrollWheelStep)
	}
}

// TestPortfolioContentUpdates 热重载替换内容并重建螺母
func TestPortfolioContentUpdates(t *testing.T) {
	updates := make(chan *config.Portfolio, 1)
	s := newTestPortfolio(t, &fakeInput{}, WithContentUpdates(updates))
	s.Mount()

	next, err := config.ParsePortfolio([]byte("owner: {name: Reloaded}\ntechnologies:\n  - {name: Go}\n"), config.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	updates <- next
	s.Update(1.0 / 60)

	if s.Content().Owner.Name != "Reloaded" {
		t.Errorf("content not replaced: %q", s.Content().Owner.Name)
	}
	if len(s.nuts) != 1 {
		t.Errorf("tech nuts = %d, want 1", len(s.nuts))
	}
}

// TestPortfolioDragNutDoesNotScroll 触摸拖拽螺母只旋转，不滚动页面
func TestPortfolioDragNutDoesNotScroll(t *testing.T) {
	in := &fakeInput{}
	s := newTestPortfolio(t, in)
	s.Mount()

	m, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, s.nuts[0])
	x := int(m.Viewport.X + m.Viewport.Width/2)
	y := int(m.Viewport.Y + m.Viewport.Height/2)

	in.state = fakeInputState(x, y)
	in.state.JustPressed = true
	s.Update(1.0 / 60)

	in.state.Y = y - 80
	s.Update(1.0 / 60)

	fl, _ := ecs.GetComponent[*components.FloatComponent](s.entityManager, s.nuts[0])
	if fl.DragPitch == 0 {
		t.Error("dragging a nut should rotate it")
	}
	if got := s.scroll().Target; got != 0 {
		t.Errorf("scroll target = %v, want 0 while rotating a nut", got)
	}
}

// TestPortfolioUnmount 卸载清空实体
func TestPortfolioUnmount(t *testing.T) {
	s := newTestPortfolio(t, &fakeInput{})
	s.Mount()
	s.Unmount()

	if s.IsMounted() {
		t.Error("scene should be unmounted")
	}
	if s.entityManager.Count() != 0 {
		t.Errorf("entities left after unmount: %d", s.entityManager.Count())
	}
}

// TestPortfolioDragUnderNavBarScrolls 导航栏遮住的螺母部分不抢占触摸滚动
func TestPortfolioDragUnderNavBarScrolls(t *testing.T) {
	in := &fakeInput{}
	s := newTestPortfolio(t, in)
	s.Mount()

	// 螺母顶部滚到屏幕上方 20 像素，上半部分位于导航栏下面
	sc := s.scroll()
	sc.Offset = s.layout.techCells[0].y + 20
	sc.Target = sc.Offset
	s.syncNutViewports()
	origin := sc.Offset

	m, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, s.nuts[0])
	x := int(m.Viewport.X + m.Viewport.Width/2)
	y := int(config.NavBarHeight / 2)
	if float32(y) < m.Viewport.Y || float32(y) > m.Viewport.Y+m.Viewport.Height {
		t.Fatalf("press y %d should be inside nut viewport %+v", y, m.Viewport)
	}

	in.state = fakeInputState(x, y)
	in.state.JustPressed = true
	s.Update(1.0 / 60)
	if s.dragRotateSystem.Active() != 0 {
		t.Fatal("press on the navbar should not grab the nut underneath")
	}

	in.state.Y = y - 20
	s.Update(1.0 / 60)
	if got := s.scroll().Target; math.Abs(got-(origin+20)) > 1e-9 {
		t.Errorf("scroll target = %v, want %v", got, origin+20)
	}
	fl, _ := ecs.GetComponent[*components.FloatComponent](s.entityManager, s.nuts[0])
	if fl.DragPitch != 0 || fl.DragYaw != 0 {
		t.Errorf("nut rotated under the navbar: (%v, %v)", fl.DragYaw, fl.DragPitch)
	}
}

// writeIcon 在临时目录写入 size×size 的 PNG 图标
func writeIcon(t *testing.T, name string, size int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.White)
		}
	}
	path := filepath.Join(t.TempDir(), name+".png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestPortfolioIcons 图标出现在服务卡片、时间线和螺母正面；找不到的图标被跳过
func TestPortfolioIcons(t *testing.T) {
	icon := writeIcon(t, "gear", 16)
	content := fmt.Sprintf(`
owner: {name: Rick}
services:
  - {title: Mechanic, icon: %[1]q}
  - {title: Writer, icon: missing-icon}
technologies:
  - {name: PLC, icon: %[1]q}
  - {name: Safety, icon: missing-icon}
experiences:
  - {title: Labeler, companyName: Krones, icon: %[1]q, iconBg: "#E6DEDD"}
`, icon)
	p, err := config.ParsePortfolio([]byte(content), config.FormatYAML)
	if err != nil {
		t.Fatalf("ParsePortfolio() error: %v", err)
	}

	rm := game.NewResourceManager()
	s, err := NewPortfolioScene(rm, p, &fakeInput{})
	if err != nil {
		t.Fatalf("NewPortfolioScene() error: %v", err)
	}
	s.Mount()

	img := rm.GetImage(icon)
	if img == nil {
		t.Fatal("icon was not loaded through the resource manager")
	}

	var images []drawItem
	for _, it := range s.layout.items {
		if it.kind == itemImage {
			images = append(images, it)
		}
	}
	// 服务卡片 1 个 + 时间线 1 个；缺失的图标不产生条目
	if len(images) != 2 {
		t.Fatalf("image items = %d, want 2", len(images))
	}
	for _, it := range images {
		if it.img != img {
			t.Errorf("image item uses %p, want loaded icon %p", it.img, img)
		}
	}
	if images[0].w != serviceIconSize || images[0].clr.A != 0 {
		t.Errorf("service icon = %+v, want %v wide and untinted", images[0], serviceIconSize)
	}
	// 浅色底上的时间线图标着深色
	if images[1].clr != config.ColorPrimary {
		t.Errorf("timeline icon tint = %v, want %v", images[1].clr, config.ColorPrimary)
	}

	nut, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, s.nuts[0])
	if nut.Decal != img {
		t.Error("tech nut should carry the icon as a decal")
	}
	other, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, s.nuts[1])
	if other.Decal != nil {
		t.Error("nut with a missing icon should have no decal")
	}
}

func TestIconTint(t *testing.T) {
	tests := []struct {
		name string
		bg   color.RGBA
		want color.RGBA
	}{
		{"浅色底", color.RGBA{0xE6, 0xDE, 0xDD, 0xff}, config.ColorPrimary},
		{"深色底", color.RGBA{0x38, 0x3E, 0x56, 0xff}, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := iconTint(tt.bg); got != tt.want {
				t.Errorf("iconTint(%v) = %v, want %v", tt.bg, got, tt.want)
			}
		})
	}
}
