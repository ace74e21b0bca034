/*
Package geotext is a Unicode text engine for geographic search and labelling.

Description

Map data is full of names: streets, places, points of interest, administrative
areas. Users type fragments of these names, usually without accents, often in
the wrong letter case and with typos. Package geotext and its sub-packages
provide the machinery to store such names and to match user input against them:

 - storage variants for text (read-only views, writable views, fixed-size buffers
   and growable strings), all sharing one interface Text
 - a prefix-aware comparison returning one of five outcomes (see Ordering)
 - folding of letter case, accents, symbols and whitespace (package match)
 - substring/prefix search, bounded fuzzy matching and wildcard matching
   (package match)
 - locale aware case conversion and transliteration (package casing)
 - abbreviation of address components (package abbrev)
 - key/value attributes packed into a single text (package attrib)
 - per-locale abbreviations and title case exceptions, and conversion
   between country names and codes (package locale)
 - line break opportunities for labels (IsLineBreak) and map object IDs
   packed into text (IDToString)

Text

Text is a sequence of UTF-16 code units. This is the storage format of the
map data and keeps the offsets of search results compatible with it.
Conversion to and from UTF-8 is provided by FromUTF8 and ToUTF8.

Four types implement Text:

   View            read-only, borrows its units, zero-copy
   WritableView    writable, borrows its units up to a fixed maximum
   FixedBuffer     owns a buffer of a capacity fixed at construction time
   String          owns its units, growable; short strings are stored inline

Operations which modify text (Replace, Insert, Append, Set, Delete, …) are
functions operating on the Text interface. They check Writable() first and
return ErrInvalidOperation for read-only text, leaving it unchanged. Bounded
variants silently truncate text which does not fit.

Comparing

Compare returns an Ordering, which does not only tell the lexicographic order
of two texts, but also whether one is a prefix of the other:

   -2  a < b, and a is not a prefix of b
   -1  a is a proper prefix of b
    0  a == b
    1  b is a proper prefix of a
    2  b < a, and b is not a prefix of a

Concurrency

Nothing in this package performs internal locking. Views may be read
concurrently as long as nobody mutates the borrowed units. Owned variants must
be confined to a single goroutine or be synchronized by the client.

BSD License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package geotext

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
