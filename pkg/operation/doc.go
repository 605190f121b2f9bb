/*
Package operation runs a rewrite job over the files matched by a glob.

	+-------------+
	|  Discover   |
	| (doublestar)|
	+------+------+
	       |
	+------+------+
	| ProcessFile |  read -> transform -> write
	|  (per file) |
	+------+------+
	       |
	+------+------+
	|   Summary   |
	+-------------+

🔄 Flow:
 1. Discover expands the pattern against the root filesystem, files only
 2. ProcessFile reads the whole file, rejects invalid UTF-8, applies the
    rules and writes the result back in place
 3. every file yields a status.FileResult, failures never stop the run
 4. the Runner prints one line per file and a final summary

Files are processed one at a time in discovery order. Writes truncate the
original file; nothing is backed up and nothing is rolled back. The context
is checked between files only, so a cancelled run never stops mid-write.
*/
package operation
