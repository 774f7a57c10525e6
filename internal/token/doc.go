// Package token classifies the space-delimited segments of a payload as
// Latin script text, numeric text or literals, and locates the matches of
// the two numeric sub-patterns inside a segment.
package token
