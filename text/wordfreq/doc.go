// Package wordfreq counts lowercase words in delimited text.
//
// Input is read line by line. Each line is trimmed of surrounding white
// space and split on a delimiter, a single space by default. Reading stops
// at the first line whose first field is the sentinel word ("finish" by
// default). A field is counted only if it consists of letters alone and
// every cased letter in it is lowercase; "hello" counts, while "Hello",
// "don't" and "42" do not.
//
// [Count] handles a whole reader. [Counter] accepts lines one at a time for
// callers that already have them.
package wordfreq
