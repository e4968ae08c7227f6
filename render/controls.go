package render

// Controls is the help overlay text, lines with ':' are key bindings
var Controls = []string{
	"Left Click:  select a ball, or hold inside the box to size a new one",
	"Release:     launch it, velocity points from the mouse to the center",
	"Right Click: remove the ball under the mouse / cancel the new ball",
	"",
	"Arrows:  gravity direction        g:  gravity on/off",
	"c / C:   next / previous planet   + / -:  custom g",
	"e / E:   restitution up / down    d:  density meter on/off",
	"p:       pause / resume           r:  remove all balls",
	"v:       velocity vectors         b:  spawn box",
	"l:       log all balls            m:  mute",
	"?:       controls                 q / Esc:  quit",
	"",
	"walls have infinite mass; e only applies between balls",
}
