// Package shell is the interactive advisory console: it keeps one
// board and one committed roll, and delegates all game math to the
// engine packages.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/markdias/shutbox/automatic"
	"github.com/markdias/shutbox/config"
	"github.com/markdias/shutbox/equity"
	"github.com/markdias/shutbox/movegen"
	"github.com/markdias/shutbox/rigging"
	"github.com/markdias/shutbox/selection"
	"github.com/markdias/shutbox/tiles"
	"github.com/markdias/shutbox/winprob"
)

// probEvalLimit gates probability evaluation; past this many open
// tiles the DP state space is intractable for interactive use.
const probEvalLimit = 20

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config
	rng *frand.RNG

	board  []tiles.Tile
	roll   tiles.Roll
	policy winprob.OneDiePolicy
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mshutbox>\033[0m ",
		HistoryFile:     "/tmp/shutbox_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{
		l:      l,
		cfg:    cfg,
		rng:    frand.New(),
		board:  tiles.StandardBoard(cfg.MaxTileValue),
		policy: cfg.Policy(),
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "bye" || line == "exit" {
			break
		}
		if line == "" {
			continue
		}
		sc.Execute(line)
	}
	sig <- syscall.SIGINT
}

// Execute runs a single command line.
func (sc *ShellController) Execute(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "show":
		sc.show()
	case "new":
		err = sc.newBoard(args)
	case "roll":
		err = sc.rollDice(args)
	case "rig":
		sc.rig()
	case "combos":
		err = sc.combos(args)
	case "hints":
		sc.hints()
	case "best":
		sc.best()
	case "play":
		sc.play()
	case "shut":
		err = sc.shut(args)
	case "prob":
		sc.prob()
	case "set":
		err = sc.set(args)
	case "autoplay":
		err = sc.autoplay(args)
	case "help":
		sc.usage()
	default:
		err = fmt.Errorf("unknown command %q; try help", cmd)
	}
	if err != nil {
		showMessage("error: "+err.Error(), sc.l.Stderr())
	}
}

func (sc *ShellController) usage() {
	showMessage(`commands:
show - print the board and committed roll
new [maxValue] - start a fresh board
roll [face [face]] - roll dice (random if no faces given)
rig - synthesize a roll the board can pay for
combos [total] - list combinations for the roll (or a given total)
hints - tile values participating in any combination
best - recommended combination for the roll
play - apply the recommended combination
shut <v> [v...] - shut the given tile values
prob - probability of clearing the board from here
set policy <never|max-open-six|sum-below-six>
autoplay [n] - self-play n games and report
exit - quit`, sc.l.Stderr())
}

func (sc *ShellController) out() io.Writer {
	return sc.l.Stdout()
}

func (sc *ShellController) show() {
	var b strings.Builder
	for _, t := range sc.board {
		if t.Open {
			fmt.Fprintf(&b, " %d", t.Value)
		} else {
			fmt.Fprintf(&b, " [%d]", t.Value)
		}
	}
	showMessage("board:"+b.String(), sc.out())
	showMessage(fmt.Sprintf("roll: %v  open sum: %d  policy: %v",
		sc.roll, tiles.SumOpen(sc.board), sc.policy), sc.out())
}

func (sc *ShellController) newBoard(args []string) error {
	maxValue := sc.cfg.MaxTileValue
	if len(args) > 0 {
		mv, err := strconv.Atoi(args[0])
		if err != nil || mv < 1 || mv > tiles.MaxTileValue {
			return fmt.Errorf("max value must be 1-%d", tiles.MaxTileValue)
		}
		maxValue = mv
	}
	sc.board = tiles.StandardBoard(maxValue)
	sc.roll = tiles.Roll{}
	sc.show()
	return nil
}

func (sc *ShellController) rollDice(args []string) error {
	switch len(args) {
	case 0:
		if sc.policy.Permits(tiles.MaskOf(sc.board)) {
			sc.roll = tiles.SingleRoll(sc.rng.Intn(6) + 1)
		} else {
			sc.roll = tiles.DoubleRoll(sc.rng.Intn(6)+1, sc.rng.Intn(6)+1)
		}
	case 1, 2:
		faces := make([]int, len(args))
		for i, a := range args {
			f, err := strconv.Atoi(a)
			if err != nil || f < 1 || f > 6 {
				return fmt.Errorf("die face must be 1-6, got %q", a)
			}
			faces[i] = f
		}
		if len(faces) == 1 {
			sc.roll = tiles.SingleRoll(faces[0])
		} else {
			sc.roll = tiles.DoubleRoll(faces[0], faces[1])
		}
	default:
		return fmt.Errorf("roll takes at most two faces")
	}
	showMessage(fmt.Sprintf("rolled %v (total %d)", sc.roll, sc.roll.Total()), sc.out())
	if len(movegen.Combinations(sc.roll.Total(), sc.board)) == 0 {
		showMessage(fmt.Sprintf("bust! no combination; %d points stay open",
			tiles.SumOpen(sc.board)), sc.out())
	}
	return nil
}

func (sc *ShellController) rig() {
	roll, ok := rigging.RiggedRoll(sc.board, sc.cfg.PreferSingleDie)
	if !ok {
		showMessage("no achievable roll on this board", sc.out())
		return
	}
	sc.roll = roll
	showMessage(fmt.Sprintf("rigged %v (total %d)", roll, roll.Total()), sc.out())
}

func (sc *ShellController) combos(args []string) error {
	total := sc.roll.Total()
	if len(args) > 0 {
		t, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad total %q", args[0])
		}
		total = t
	}
	combos := movegen.Combinations(total, sc.board)
	if len(combos) == 0 {
		showMessage(fmt.Sprintf("no combinations for %d", total), sc.out())
		return nil
	}
	for i, c := range combos {
		showMessage(fmt.Sprintf("%2d) %s", i+1, comboString(c)), sc.out())
	}
	return nil
}

func (sc *ShellController) hints() {
	hinted := movegen.HintedIDs(sc.roll.Total(), sc.board)
	if len(hinted) == 0 {
		showMessage("no hints; is a roll committed?", sc.out())
		return
	}
	vals := make([]int, 0, len(hinted))
	for _, t := range sc.board {
		if hinted[t.ID] {
			vals = append(vals, t.Value)
		}
	}
	sort.Ints(vals)
	showMessage(fmt.Sprintf("hinted tiles: %v", vals), sc.out())
}

func (sc *ShellController) best() {
	move := equity.BestMove(sc.roll, sc.board)
	if len(move) == 0 {
		showMessage("bust: no legal combination", sc.out())
		return
	}
	showMessage("best: "+comboString(move), sc.out())
}

func (sc *ShellController) play() {
	move := equity.BestMove(sc.roll, sc.board)
	if len(move) == 0 {
		showMessage("bust: nothing to play", sc.out())
		return
	}
	sc.board = tiles.Shut(sc.board, move)
	sc.roll = tiles.Roll{}
	sc.show()
}

func (sc *ShellController) shut(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("shut needs at least one tile value")
	}
	var picked []tiles.Tile
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("bad tile value %q", a)
		}
		t, ok := sc.openTileByValue(v, picked)
		if !ok {
			return fmt.Errorf("no open tile of value %d", v)
		}
		if !selection.IsSelectable(t, picked, sc.board, sc.roll) {
			return fmt.Errorf("tile %d cannot extend to a full combination", v)
		}
		picked = append(picked, t)
	}
	if !selection.Validate(picked, sc.roll) {
		return fmt.Errorf("selection sums to %d, roll total is %d",
			tiles.SumOpen(picked), sc.roll.Total())
	}
	sc.board = tiles.Shut(sc.board, picked)
	sc.roll = tiles.Roll{}
	sc.show()
	return nil
}

func (sc *ShellController) openTileByValue(value int, exclude []tiles.Tile) (tiles.Tile, bool) {
	used := make(map[int]bool, len(exclude))
	for _, t := range exclude {
		used[t.ID] = true
	}
	for _, t := range sc.board {
		if t.Open && t.Value == value && !used[t.ID] {
			return t, true
		}
	}
	return tiles.Tile{}, false
}

func (sc *ShellController) prob() {
	open := tiles.OpenTiles(sc.board)
	if len(open) > probEvalLimit {
		showMessage(fmt.Sprintf("board too large for probability search (%d open tiles)",
			len(open)), sc.out())
		return
	}
	p := winprob.Evaluate(sc.board, sc.policy)
	showMessage(fmt.Sprintf("clearing probability: %.4f%%", p*100), sc.out())
}

func (sc *ShellController) set(args []string) error {
	if len(args) != 2 || args[0] != "policy" {
		return fmt.Errorf("usage: set policy <never|max-open-six|sum-below-six>")
	}
	p, err := winprob.ParsePolicy(args[1])
	if err != nil {
		return err
	}
	sc.policy = p
	sc.cfg.OneDiePolicy = args[1]
	showMessage("one-die policy: "+p.String(), sc.out())
	return nil
}

func (sc *ShellController) autoplay(args []string) error {
	n := sc.cfg.AutoplayGames
	if len(args) > 0 {
		games, err := strconv.Atoi(args[0])
		if err != nil || games < 1 {
			return fmt.Errorf("bad game count %q", args[0])
		}
		n = games
	}
	log.Info().Int("games", n).Msg("starting autoplay")
	summary, err := automatic.Run(context.Background(), sc.cfg, n)
	if err != nil {
		return err
	}
	showMessage(summary.String(), sc.out())
	return nil
}

func comboString(c []tiles.Tile) string {
	parts := make([]string, len(c))
	sum := 0
	for i, t := range c {
		parts[i] = strconv.Itoa(t.Value)
		sum += t.Value
	}
	return strings.Join(parts, "+") + " = " + strconv.Itoa(sum)
}

func (sc *ShellController) Cleanup() {
	sc.l.Close()
}
