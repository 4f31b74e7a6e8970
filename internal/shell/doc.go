// Package shell is the command engine of the simulator.
//
// A Session owns a tree, the current directory and two output sinks. Each
// call to Session.Exec parses one command line, builds the matching Command
// bound to its resolved targets, and executes it. Command output goes to the
// output sink; user-facing failures go to the error sink as single lines of
// the form "<cmd>: <detail>: <reason>". Nothing a script does can make Exec
// fail except a broken sink.
//
// Supported commands:
//
//	ls [-R] [path] [| grep "pattern"]
//	pwd
//	cd path
//	cp src dst
//	mv src dst
//	rm path
//	touch path
//	mkdir path
//
// ls, rm, touch and mkdir accept "*" path segments unless the line pipes into grep.
package shell
