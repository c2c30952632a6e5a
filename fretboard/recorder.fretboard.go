package fretboard

// CommandKind identifies a recorded draw call.
type CommandKind uint8

const (
	CmdLine CommandKind = iota
	CmdCircle
	CmdText
)

var commandKindNames = [...]string{
	CmdLine:   "Line",
	CmdCircle: "Circle",
	CmdText:   "Text",
}

func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "Unknown"
}

// Command is one draw call. Only the fields relevant to Kind are set.
type Command struct {
	Kind   CommandKind
	From   Point
	To     Point
	Color  Color
	Width  float64
	Radius float64
	Text   string
	Size   float64
}

// Recorder is a Surface that keeps every draw call instead of rasterizing it.
type Recorder struct {
	width    float64
	height   float64
	commands []Command
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) DrawLine(p1, p2 Point, c Color, width float64) {
	r.commands = append(r.commands, Command{Kind: CmdLine, From: p1, To: p2, Color: c, Width: width})
}

func (r *Recorder) DrawCircle(center Point, radius float64, c Color) {
	r.commands = append(r.commands, Command{Kind: CmdCircle, From: center, Color: c, Radius: radius})
}

func (r *Recorder) DrawText(text string, pos Point, c Color, size float64) {
	r.commands = append(r.commands, Command{Kind: CmdText, From: pos, Color: c, Text: text, Size: size})
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

func (r *Recorder) Commands() []Command {
	return r.commands
}

func (r *Recorder) Reset() {
	r.commands = nil
}

// Count returns how many recorded commands are of kind k.
func (r *Recorder) Count(k CommandKind) int {
	n := 0
	for _, c := range r.commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Playback replays the recorded commands onto s.
func (r *Recorder) Playback(s Surface) {
	for _, c := range r.commands {
		switch c.Kind {
		case CmdLine:
			s.DrawLine(c.From, c.To, c.Color, c.Width)
		case CmdCircle:
			s.DrawCircle(c.From, c.Radius, c.Color)
		case CmdText:
			s.DrawText(c.Text, c.From, c.Color, c.Size)
		}
	}
}
