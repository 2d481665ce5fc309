// Package analysis turns text into streams of tokens for indexing and
// search.
//
// A Tokenizer splits characters into tokens; token filters wrap a stream and
// transform, drop or add tokens; an Analyzer assembles a fresh chain for each
// input. Streams are pulled one token at a time:
//
//	ts := analysis.DefaultStandardAnalyzer().TokenStream("body", strings.NewReader(text))
//	defer ts.Close()
//	for {
//		tok, err := ts.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Println(tok.Text(), tok.StartOffset(), tok.EndOffset())
//	}
//
// Offsets are byte offsets into the input. A position increment of 0 stacks
// a token on the previous one (synonyms, grams, compound parts); more than 1
// marks removed tokens.
package analysis
