package letterfall

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/letterfall/internal/core"
)

// Minimum screen size for the play-field
const (
	minScreenW = 12
	minScreenH = 8
)

// Render draws the HUD, the bordered field and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Too small")
		return
	}
	if g.session == nil {
		return
	}

	g.drawHUD(dst)

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-2)
	dst.DrawBox(field, flashColor(g.flash))
	g.drawLetters(dst, field.Inner())

	g.drawStatus(dst, dst.Height()-1)

	if g.session.IsGameOver() {
		g.drawGameOver(dst)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.session.Score()), core.ColorBrightWhite)

	lives := "∞"
	if g.session.Rules().HasLives() {
		lives = strings.Repeat("♥", g.session.Lives()) +
			strings.Repeat("·", g.session.Rules().Lives-g.session.Lives())
	}
	livesText := "Lives: " + lives
	dst.DrawTextColored(dst.Width()-len([]rune(livesText))-1, 0, livesText, core.ColorRed)

	mode := string(g.mode)
	dst.DrawTextColored((dst.Width()-len(mode))/2, 0, mode, core.ColorGray)
}

// drawLetters scales field units onto the inner rect. Y is scaled against the
// expiry line so the last visible row is just above it.
func (g *Game) drawLetters(dst *core.Screen, inner core.Rect) {
	if inner.W <= 0 || inner.H <= 0 {
		return
	}
	width := g.cfg.Field.Width
	expiry := g.cfg.Field.Expiry()

	for _, l := range g.Letters() {
		col := core.Clamp(int(l.X/width*float64(inner.W)), 0, inner.W-1)
		row := core.Clamp(int(l.Y/expiry*float64(inner.H)), 0, inner.H-1)

		color := core.ColorWhite
		switch {
		case !l.Active:
			color = core.ColorGray
		case l.Focused:
			color = core.ColorBrightYellow
		}
		dst.SetColored(inner.X+col, inner.Y+row, l.Char, color)
	}
}

func (g *Game) drawStatus(dst *core.Screen, y int) {
	res := g.last
	if res.Word == "" && res.Reason == RejectNone {
		return
	}

	var text string
	color := core.ColorGreen
	switch res.Event {
	case core.EventBonus:
		text = fmt.Sprintf("%s +%d BONUS!", res.Word, res.Points)
		color = core.ColorMagenta
	case core.EventValid:
		text = fmt.Sprintf("%s +%d", res.Word, res.Points)
	case core.EventInvalid:
		text = fmt.Sprintf("%s: %s", res.Word, res.Reason)
		if res.Reason == RejectEmpty {
			text = "type a word first"
		}
		color = core.ColorRed
	default:
		return
	}
	dst.DrawTextColored(1, y, text, color)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Nice Try Bucko! Your score: %d", g.session.Score()),
		"R again  Tab words  Q back",
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW = core.Min(boxW+4, dst.Width())
	boxH := len(lines) + 2

	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorRed)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}

// flashColor maps the last feedback event to a border color.
func flashColor(ev core.Event) core.Color {
	switch ev {
	case core.EventValid:
		return core.ColorGreen
	case core.EventBonus:
		return core.ColorMagenta
	case core.EventInvalid, core.EventGameOver:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}
