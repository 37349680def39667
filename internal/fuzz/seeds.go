package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var inlineSeeds = []string{
	"",
	"fn main() {}",
	"pub fn add<T: Add<Output = T>>(a: T, b: T) -> T where T: Copy { a + b }",
	"struct Pair(pub i32, String);",
	"impl<'a> Reader<'a> { fn next(&mut self) -> Option<u8> { self.buf.get(self.pos).map(|b| *b) } }",
	"fn f() -> Vec<Vec<u8>> { x >>= 1; a && b }",
	"#![allow(dead_code)] #[cfg(not(test))] mod m { use a::{b, c::*}; }",
	"fn m(x: Option<u8>) { match x { Some(n) if n > 1 => n, _ => 0 } }",
	"x.0.1 + 'a' as u32 - \"s\\n\".len()",
	"thing! { (a [b {c}]) }",
	"fn broken( {",
	"let x = ;",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.rs файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".rs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
