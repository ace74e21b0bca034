/*
Package match compares and searches text under a StringMatchMethod.

A Method is a set of flags: Prefix, IgnoreSymbols, FoldAccents, Fuzzy,
FoldCase and IgnoreWhitespace. Except for Prefix and Fuzzy, flags are applied
by a FoldingIterator, which wraps a code-point iterator and delivers the folded
sequence of code-points. All the matching operations of this package work on
folded sequences:

   Compare     prefix-aware comparison, see geotext.Ordering
   Find        substring and prefix search, token-aligned when ignoring characters
   FuzzyMatch  bounded edit distance, at most KMaxFuzzyDistance
   WildMatch   glob-style patterns with '*' and '?'
   LayerMatch  comma separated lists of wildcard patterns

Typical Usage

   m := match.NewMethod(match.FoldCase, match.FoldAccents)
   if match.Compare(name, query, m) == geotext.Equal {
       ...
   }
   start, end, ok := match.Find(name, query, match.PrefixMethod.With(match.FoldCase))

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
package match

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
