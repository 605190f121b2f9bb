/*
Package status holds the typed outcome of rewriting files and the run summary.

	+-------------+      +-------------+
	| FileResult  | ---> |   Summary   |
	| (per file)  |      | (per run)   |
	+-------------+      +------+------+
	                            |
	                     +------+------+
	                     |  Formatter  |
	                     |  (stdout)   |
	                     +-------------+

🎯 Purpose:
- Carry success or failure of one file as a value instead of a caught panic
- Tally discovered, succeeded and failed files for one invocation
- Format the operator-facing lines printed to stdout

🔄 Flow:
1. operation.ProcessFile returns a FileResult
2. the runner records it into the Summary
3. the log package prints it through a FileFormatter

A failed FileResult never stops a run. Failures only show up in the printed
lines and in Summary.Failed; the process exit status does not reflect them.
*/
package status
