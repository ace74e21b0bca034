/*
Package ucp deals with Unicode code-points: iterating over them, classifying them
and folding them for comparison.

Iteration

Text arrives in different encodings. The stream layer hands out UTF-8, owned
strings store UTF-16 and some callers prepare UTF-32 arrays. Package ucp
adapts each of them to a single pull-based Iterator:

   it := ucp.NewUTF16Iter(units)
   for r, err := it.Next(); err == nil; r, err = it.Next() {
       ...
   }

Iterators operate on a buffer owned by the caller and never copy it. Every
adapter supports a single step of pushback with Back(). Malformed input is
never rejected: broken UTF-8 sequences and unpaired UTF-16 surrogates are
delivered as U+FFFD, consuming exactly one code unit each.

Classes

Matching and word breaking share one coarse classification of code-points
(letters, digits, whitespace, symbols), see ClassForRune.

Folding

StripAccent and FoldCase fold single code-points. Accent stripping removes
combining marks from the canonical decomposition of a code-point; case
folding is full Unicode case folding and may expand one code-point into
several (e.g., 'ß' → "ss").

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
package ucp

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
