package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridquest/internal/arena"
	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/telemetry"
	"github.com/samdwyer/gridquest/internal/ui"
)

const (
	title      = "GridQuest"
	keysHelp   = "arrows/hjkl move  a attack  tab switch  r remove  e steal  f shoot  i inspect  s sharpen  . wait  q quit"
	plainHelp  = "left/right/up/down (h/l/k/j), attack, switch, remove, steal, cast <spell>, shoot, inspect, sharpen, wait, quit"
	swordState = 5
	swordGrams = 1400
)

// Game holds the entire game state.
type Game struct {
	id     string
	cfg    Config
	logger *slog.Logger
	tracer trace.Tracer
	rng    *rand.Rand

	roles  *gamedata.RoleRegistry
	spells *gamedata.SpellRegistry
	arena  *arena.Arena
	status *ui.StatusBar

	player *arena.Player
	party  []arena.Fighter // player first
	active int
	sword  *entity.Longsword

	state State
	turns int
}

// New builds a game: the party in the middle of the grid, a longsword next
// to the player and cfg.Enemies enemies on random free cells.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	roles, err := gamedata.LoadRoleRegistry()
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	spells, err := gamedata.LoadSpellRegistry()
	if err != nil {
		return nil, fmt.Errorf("load spells: %w", err)
	}

	g := &Game{
		id:     uuid.NewString(),
		cfg:    cfg,
		logger: logger,
		tracer: telemetry.Tracer("game"),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		roles:  roles,
		spells: spells,
		status: ui.NewStatusBar(cfg.Width),
		state:  StatePlaying,
	}
	g.arena = arena.New(arena.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Rand:        g.rng,
		Status:      g.status,
		Spells:      spells,
		FleeRetries: cfg.FleeRetries,
		Logger:      logger,
	})

	_, span := g.tracer.Start(ctx, "game.init")
	defer span.End()

	if err := g.populate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	px, py := g.player.Position()
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.Int64("seed", cfg.Seed),
		attribute.Int("grid.width", cfg.Width),
		attribute.Int("grid.height", cfg.Height),
		attribute.Int("enemy_count", cfg.Enemies),
		attribute.Int("player.start_x", px),
		attribute.Int("player.start_y", py),
	)
	logger.Info("game started", "game", g.id,
		"seed", cfg.Seed, "width", cfg.Width, "height", cfg.Height, "enemies", cfg.Enemies)

	g.status.Track(g.player)
	g.status.SetStatus("Defeat every B on the map. Tab switches hero.")
	return g, nil
}

// populate spawns the party, the sword and the enemies.
func (g *Game) populate() error {
	cx, cy := g.cfg.Width/2, g.cfg.Height/2
	grid := g.arena.Grid()

	spawn := func(role string, x, y int) (arena.Fighter, error) {
		x, y = grid.Wrap(x, y)
		f, err := g.arena.SpawnFromDef(g.roles.GetByID(role), x, y)
		if err != nil {
			return nil, fmt.Errorf("spawn %s: %w", role, err)
		}
		return f, nil
	}

	player, err := spawn("player", cx, cy)
	if err != nil {
		return err
	}
	wizard, err := spawn("wizard", cx-1, cy)
	if err != nil {
		return err
	}
	archer, err := spawn("archer", cx+1, cy)
	if err != nil {
		return err
	}
	g.player = player.(*arena.Player)
	g.party = []arena.Fighter{player, wizard, archer}

	sx, sy := grid.Wrap(cx, cy+1)
	g.sword = entity.NewLongsword(sx, sy, swordGrams, swordState)
	if err := g.arena.PlaceItem(g.sword); err != nil {
		return fmt.Errorf("place sword: %w", err)
	}

	for i := 0; i < g.cfg.Enemies; i++ {
		x, y, ok := g.arena.RandomFreeCell()
		if !ok {
			return fmt.Errorf("no free cell for enemy %d", i+1)
		}
		if _, err := spawn("enemy", x, y); err != nil {
			return err
		}
	}
	return nil
}

// ID returns the session ID attached to this game's spans and logs.
func (g *Game) ID() string { return g.id }

// Arena returns the rule engine, which is also the map to draw.
func (g *Game) Arena() *arena.Arena { return g.arena }

// Status returns the status panel.
func (g *Game) Status() *ui.StatusBar { return g.status }

// Player returns the player character.
func (g *Game) Player() *arena.Player { return g.player }

// Active returns the party member currently taking commands.
func (g *Game) Active() arena.Fighter { return g.party[g.active] }

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Turns returns the number of turns played.
func (g *Game) Turns() int { return g.turns }

// Seed returns the seed the game was built with.
func (g *Game) Seed() int64 { return g.cfg.Seed }

// Run executes the full-screen game loop on the terminal.
func (g *Game) Run(ctx context.Context) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen, g.roles, entity.GlyphDead)

	for !g.state.Over() {
		if err := ctx.Err(); err != nil {
			g.Step(ctx, Command{Action: ActionQuit})
			return err
		}

		renderer.Render(g.arena, g.status, g.footer(keysHelp))
		g.status.Flush()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if cmd := keyToCommand(ev); cmd.Action != ActionNone {
				g.Step(ctx, cmd)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}

	if g.state == StateQuit {
		return nil
	}

	// Show the final frame until a key is pressed.
	renderer.Render(g.arena, g.status, g.footer("press any key to exit"))
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}

// RunPlain plays in line mode: one command per input line, one frame per turn.
// Reaching the end of input quits the game.
func (g *Game) RunPlain(ctx context.Context, in io.Reader, out io.Writer) error {
	plain := ui.NewPlain(out)
	scanner := bufio.NewScanner(in)

	render := func() error {
		err := plain.Render(g.frameTitle(), g.arena, g.status, g.footer(plainHelp))
		g.status.Flush()
		return err
	}

	if err := render(); err != nil {
		return err
	}
	for !g.state.Over() {
		if err := ctx.Err(); err != nil {
			g.Step(ctx, Command{Action: ActionQuit})
			return err
		}
		if !scanner.Scan() {
			g.Step(ctx, Command{Action: ActionQuit})
			break
		}

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			g.status.SetStatus(err.Error())
		} else {
			g.Step(ctx, cmd)
		}
		if err := render(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

func (g *Game) frameTitle() string {
	return fmt.Sprintf("%s  turn %d  hero: %s", title, g.turns, g.Active().GetName())
}

func (g *Game) footer(help string) string {
	switch g.state {
	case StateVictory:
		return "Victory! " + help
	case StateDefeat:
		return "Defeat. " + help
	}
	return help
}
