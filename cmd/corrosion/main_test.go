/*
File    : corrosion/cmd/corrosion/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Batch mode must not echo a program's final value when that value is
// Unit: a program whose last statement is print(...) already wrote its
// own output, and echoing "()" afterward would be a spurious extra line.
func TestFileModeDoesNotEchoUnitResult(t *testing.T) {
	var out bytes.Buffer
	result, err := evalSource("let x = 1 + 2 * 3; print(x);", ".", &out)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out.String())

	printResult(&out, result)
	assert.Equal(t, "7\n", out.String())
}

func TestFileModeEchoesNonUnitFinalValue(t *testing.T) {
	var out bytes.Buffer
	result, err := evalSource("1 + 2;", ".", &out)
	require.NoError(t, err)

	printResult(&out, result)
	assert.Equal(t, "3\n", out.String())
}
