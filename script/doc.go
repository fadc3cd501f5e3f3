// Package script loads nom action graphs from YAML files.
//
// A file declares named actions under an "actions" key. Each node has a kind
// and the fields that kind needs:
//
//	actions:
//	  blink:
//	    kind: repeat_forever
//	    action:
//	      kind: sequence
//	      actions:
//	        - { kind: fade_out, target: hero, duration: 0.25 }
//	        - { kind: fade_in, target: hero, duration: 0.25, curve: out_quad }
//
// Timing curves are either gween curve names (see nom.CurveNames) or tengo
// scripts: curve_script holds an expression over t, b, c and d, and
// curve_file names a .tengo file, relative to the YAML file, that assigns
// the result to out.
//
// A Library only describes actions. Build resolves target names and returns
// a fresh action graph each time it is called, ready for
// ActionPlayer.RunAction. Watcher reports edits so a game can reload its
// library while running.
package script
