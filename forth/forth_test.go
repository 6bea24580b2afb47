package forth

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BogCyg/BCForth/config"
	"github.com/BogCyg/BCForth/token"
)

func newTestEnv(t *testing.T) (*Environment, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	e := New(config.Default(), Output(&out))
	e.Dictionary().SetWarnWriter(io.Discard)
	return e, &out
}

func run(t *testing.T, e *Environment, src string) error {
	t.Helper()
	tok := token.New(strings.NewReader(src))
	for {
		toks, err := tok.Next()
		if err == io.EOF {
			return nil
		}
		require.NoError(t, err)
		if err := e.Process(toks); err != nil {
			return err
		}
	}
}

func runOK(t *testing.T, e *Environment, src string) {
	t.Helper()
	require.NoError(t, run(t, e, src))
}

func TestArithmeticAndPrint(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, "2 3 + .\n")
	require.Equal(t, "5", out.String())
}

func TestColonDefinitionSquare(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, ": SQUARE DUP * ;\n7 SQUARE .\n")
	require.Equal(t, "49", out.String())
}

func TestIfThenNegatesNegative(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, ": ABS2 DUP 0 < IF NEGATE THEN ;\n-5 ABS2 .\n")
	require.Equal(t, "5", out.String())
}

func TestDoLoopSumsIndices(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, ": SUM3 0 3 0 DO I + LOOP ;\nSUM3 .\n")
	require.Equal(t, "3", out.String())
}

func TestBeginUntilCountsDownToZero(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, ": DEC3 3 BEGIN 1 - DUP 0 = UNTIL ;\nDEC3 .\n")
	require.Equal(t, "0", out.String())
}

func TestCaseDispatchesMatchingClause(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, ": PICK2 CASE 1 OF 111 ENDOF 2 OF 222 ENDOF ENDCASE ;\n2 PICK2 .\n")
	require.Equal(t, "222", out.String())
}

func TestCreateDoesBuildsDoublingWord(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, ": DOUBLER CREATE , DOES> @ 2 * ;\n5 DOUBLER FIVEDOUBLED\nFIVEDOUBLED .\n")
	require.Equal(t, "10", out.String())
}

func TestLeaveStopsDoLoopEarly(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, ": SUMUNTIL3 0 10 0 DO I 3 = IF LEAVE THEN I + LOOP ;\nSUMUNTIL3 .\n")
	require.Equal(t, "3", out.String())
}

func TestFirst5StopsAtThreeViaLeave(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, ": FIRST5 5 0 DO I 3 = IF LEAVE THEN I . LOOP ;\nFIRST5\n")
	require.Equal(t, "012", out.String())
}

func TestVariableAndValueRoundTrip(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, "VARIABLE COUNT\n5 COUNT !\nCOUNT @ .\n")
	require.Equal(t, "5", out.String())

	out.Reset()
	runOK(t, e, "10 VALUE LIMIT\nLIMIT .\n20 TO LIMIT\nLIMIT .\n")
	require.Equal(t, "1020", out.String())
}

func TestBaseSwitchesHexFormatting(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, "16 BASE !\n255 .\n")
	require.Equal(t, "0x255", out.String())
}

func TestHexAndDecSwitchBaseByName(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, "HEX FF . DEC 255 .\n")
	require.Equal(t, "0xFF255", out.String())
}

func TestRecurseComputesFactorial(t *testing.T) {
	e, out := newTestEnv(t)
	runOK(t, e, ": FACT DUP 1 > IF DUP 1 - RECURSE * THEN ;\n5 FACT .\n")
	require.Equal(t, "120", out.String())
}

func TestStackUnderflowOnEmptyStack(t *testing.T) {
	e, _ := newTestEnv(t)
	err := run(t, e, "+\n")
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestDivisionByZero(t *testing.T) {
	e, _ := newTestEnv(t)
	err := run(t, e, "5 0 /\n")
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestUnmatchedStructuralWord(t *testing.T) {
	e, _ := newTestEnv(t)
	err := run(t, e, ": BAD THEN ;\n")
	require.ErrorIs(t, err, ErrUnmatchedStructural)
}

func TestUnknownWordErrors(t *testing.T) {
	e, _ := newTestEnv(t)
	err := run(t, e, "NOSUCHWORD\n")
	require.ErrorIs(t, err, ErrUnknownWord)
}

func TestErrorResetsStacksAndAbandonsDefinition(t *testing.T) {
	e, _ := newTestEnv(t)
	err := run(t, e, "1 2 +\n")
	require.NoError(t, err)
	err = run(t, e, "+\n")
	require.ErrorIs(t, err, ErrStackUnderflow)
	require.Equal(t, 0, e.Data().Size())

	_, found := e.Dictionary().Lookup("HALF")
	require.False(t, found)
	err = run(t, e, ": HALF DUP BOGUS ;\n")
	require.Error(t, err)
	_, found = e.Dictionary().Lookup("HALF")
	require.False(t, found)
}
