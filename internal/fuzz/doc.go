// Package fuzztests houses Go fuzz harnesses for the lexer, the token tree
// builder and the parser entry points. They guard against panics and hangs
// on arbitrary input.
//
// Назначение: загрузить байты в FileSet и прогнать их через лексер/парсер,
// а для успешно разобранных элементов проверить конверсию в токены.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
