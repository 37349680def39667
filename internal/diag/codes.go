package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexBadEscape                Code = 1006
	LexBadSuffix                Code = 1007
	LexTokenTooLong             Code = 1008

	// Синтаксические
	SynInfo                     Code = 2000
	SynUnexpectedToken          Code = 2001
	SynUnclosedDelimiter        Code = 2002
	SynMismatchedDelimiter      Code = 2003
	SynUnexpectedCloseDelimiter Code = 2004
	SynExpectIdentifier         Code = 2005
	SynExpectType               Code = 2006
	SynExpectExpression         Code = 2007
	SynExpectPattern            Code = 2008
	SynExpectItem               Code = 2009
	SynExpectSemicolon          Code = 2010
	SynInnerAttributeNotAllowed Code = 2011
	SynBadLiteral               Code = 2012
	SynExpectBlock              Code = 2013
	SynExpectMetaItem           Code = 2014
	SynInvalidTupleIndex        Code = 2015

	// Quote expansion
	QuoteInfo        Code = 4000
	QuoteRelexFailed Code = 4001
	QuoteNoNode      Code = 4002

	// Ввод/вывод и конфигурация
	IOLoadFileError Code = 5000
	ConfigInvalid   Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexBadEscape:                "Invalid escape sequence",
	LexBadSuffix:                "Invalid literal suffix",
	LexTokenTooLong:             "Token too long",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynMismatchedDelimiter:      "Mismatched closing delimiter",
	SynUnexpectedCloseDelimiter: "Unexpected closing delimiter",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectType:               "Expected type",
	SynExpectExpression:         "Expected expression",
	SynExpectPattern:            "Expected pattern",
	SynExpectItem:               "Expected item",
	SynExpectSemicolon:          "Expected semicolon",
	SynInnerAttributeNotAllowed: "Inner attribute not permitted here",
	SynBadLiteral:               "Invalid literal",
	SynExpectBlock:              "Expected block",
	SynExpectMetaItem:           "Expected meta item",
	SynInvalidTupleIndex:        "Invalid tuple index",
	QuoteInfo:                   "Quote information",
	QuoteRelexFailed:            "Re-lexing printed syntax failed",
	QuoteNoNode:                 "No node of the requested kind",
	IOLoadFileError:             "I/O error",
	ConfigInvalid:               "Invalid configuration",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("QQ%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
