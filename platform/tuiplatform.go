package platform

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/gammazero/deque"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/leapglow/rgblightd/config"
	"github.com/leapglow/rgblightd/logging"
	"github.com/leapglow/rgblightd/pattern"
	"github.com/leapglow/rgblightd/util"
)

const historyLen = 48

// frame is one displayed color pair.
type frame struct {
	left  pattern.Color
	right pattern.Color
}

// TUIPlatform simulates the two light channels in the terminal. The
// engine hands frames to Display, which only records the latest one
// through an AtomicEvent, so a slow terminal can never stall the
// animation cadence.
type TUIPlatform struct {
	conf         *config.Config
	tviewapp     *tview.Application
	intro        *tview.TextView
	lightView    *tview.TextView
	logView      *tview.TextView
	ossignalChan chan os.Signal
	frames       *util.AtomicEvent[frame]

	historyMutex sync.Mutex
	history      deque.Deque[frame]

	stopChan     chan struct{}
	updateWg     sync.WaitGroup
	logFlushOnce sync.Once
}

func NewTUIPlatform(conf *config.Config, ossignalchan chan os.Signal) *TUIPlatform {
	return &TUIPlatform{
		conf:         conf,
		ossignalChan: ossignalchan,
		frames:       util.NewAtomicEvent[frame](),
		stopChan:     make(chan struct{}),
	}
}

func (s *TUIPlatform) Start() error {
	s.initSimulationTUI()
	s.updateWg.Add(1)
	go s.updateLoop()
	return nil
}

func (s *TUIPlatform) Stop() {
	// Stop feeding the TUI first, then tear it down.
	close(s.stopChan)
	s.updateWg.Wait()
	if s.tviewapp != nil {
		s.tviewapp.Stop()
	}
}

func (s *TUIPlatform) Display(left, right pattern.Color) {
	s.frames.Send(frame{left: left, right: right})
}

// updateLoop forwards the latest frame to the TUI thread.
func (s *TUIPlatform) updateLoop() {
	defer s.updateWg.Done()
	for {
		select {
		case <-s.stopChan:
			return
		case <-s.frames.Channel():
			f := s.frames.Value()
			s.historyMutex.Lock()
			s.history.PushBack(f)
			for s.history.Len() > historyLen {
				s.history.PopFront()
			}
			s.historyMutex.Unlock()
			s.tviewapp.QueueUpdateDraw(func() {
				s.lightView.SetText(s.renderLights(f))
			})
		}
	}
}

func (s *TUIPlatform) initSimulationTUI() {
	s.tviewapp = tview.NewApplication()

	// --- Intro Pane ---
	s.intro = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	s.intro.SetText("Hit [#ff0000]q[-] to exit, [#ff0000]r[-] to reload patterns, [#ff0000]Up/Down[-] to scroll logs")
	s.intro.SetBorder(true).SetTitle(" RGBLIGHT Simulation ").SetTitleColor(tcell.ColorLightBlue)
	s.intro.SetBackgroundColor(tcell.NewRGBColor(20, 20, 20))

	// --- Light Display Pane ---
	s.lightView = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	s.lightView.SetBorder(true)
	s.lightView.SetBackgroundColor(tcell.NewRGBColor(30, 30, 30))

	// --- Log Pane ---
	s.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetChangedFunc(func() {
			s.logView.ScrollToEnd()
			s.tviewapp.Draw()
		})
	s.logView.SetBorder(true).SetTitle(" Logs ").SetTitleColor(tcell.ColorLightBlue)
	s.logView.SetBackgroundColor(tcell.NewRGBColor(40, 40, 40))

	// --- Layout ---
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.intro, 3, 0, false).
		AddItem(s.lightView, 8, 0, false).
		AddItem(s.logView, 0, 1, true)

	// --- Flush logs after first draw ---
	s.tviewapp.SetAfterDrawFunc(func(screen tcell.Screen) {
		s.logFlushOnce.Do(func() {
			logging.SetOutput(tview.ANSIWriter(s.logView))
		})
	})

	// --- Input Handling ---
	s.tviewapp.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			s.ossignalChan <- os.Interrupt
			return nil
		case tcell.KeyRune:
			switch string(event.Rune()) {
			case "q", "Q":
				s.ossignalChan <- os.Interrupt
				return nil
			case "r", "R":
				s.ossignalChan <- syscall.SIGHUP
				return nil
			}
		case tcell.KeyUp:
			row, col := s.logView.GetScrollOffset()
			s.logView.ScrollTo(row-1, col)
			return nil
		case tcell.KeyDown:
			row, col := s.logView.GetScrollOffset()
			s.logView.ScrollTo(row+1, col)
			return nil
		}
		return event
	})

	// --- Start TUI ---
	go func() {
		if err := s.tviewapp.SetRoot(layout, true).Run(); err != nil {
			fmt.Fprintln(os.Stderr, "Error running TUI:", err)
			s.ossignalChan <- os.Interrupt
		}
	}()
}

// renderLights draws both channels as colored blocks plus a strip of
// the most recently displayed frames.
func (s *TUIPlatform) renderLights(f frame) string {
	var buf strings.Builder
	block := strings.Repeat("█", 12)
	buf.WriteString(fmt.Sprintf("LEFT %s%s[-]   RIGHT %s%s[-]\n",
		displayTag(f.left), block, displayTag(f.right), block))
	buf.WriteString(fmt.Sprintf("     %s                %s\n\n", f.left.Hex(), f.right.Hex()))
	buf.WriteString(s.renderHistory())
	return buf.String()
}

// renderHistory renders one character per recent frame, oldest first,
// left channel on top of the right channel.
func (s *TUIPlatform) renderHistory() string {
	s.historyMutex.Lock()
	defer s.historyMutex.Unlock()

	var top, bottom strings.Builder
	for i := 0; i < s.history.Len(); i++ {
		f := s.history.At(i)
		top.WriteString(displayTag(f.left) + "▀[-]")
		bottom.WriteString(displayTag(f.right) + "▄[-]")
	}
	return top.String() + "\n" + bottom.String()
}

// displayTag folds the white channel into the RGB approximation a
// terminal can actually show and renders a tview color tag.
func displayTag(c pattern.Color) string {
	shown := pattern.Color{R: c.R + c.W, G: c.G + c.W, B: c.B + c.W}.Clamped()
	return fmt.Sprintf("[#%02x%02x%02x]",
		byte(shown.R*255+0.5), byte(shown.G*255+0.5), byte(shown.B*255+0.5))
}
