package token

import "io"

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src string, opts ...TokenOpt) ([]Token, error) {
	s := NewScanner(src, opts...)
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, tok)
	}
}
