// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResult_Ok_ProducesSuccessfulResult(t *testing.T) {
	res := Ok[int, string](42)
	require.True(t, res.IsOk())
	require.False(t, res.IsErr())

	value, err := res.TakeValue()
	require.NoError(t, err)
	require.Equal(t, 42, value)
}

func TestResult_Err_ProducesFailedResult(t *testing.T) {
	res := Err[int, string]("went wrong")
	require.True(t, res.IsErr())
	require.False(t, res.IsOk())

	cause, err := res.TakeCause()
	require.NoError(t, err)
	require.Equal(t, "went wrong", cause)
}

func TestResult_ZeroValueIsDrained(t *testing.T) {
	var res Result[int, string]
	require.False(t, res.IsOk())
	require.False(t, res.IsErr())

	_, err := res.TakeValue()
	require.ErrorIs(t, err, ErrInvalidState)
	_, err = res.TakeCause()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestResult_Of_NilErrorIsOk(t *testing.T) {
	res := Of(10, nil)
	require.True(t, res.IsOk())
	require.Equal(t, 10, res.UnwrapOr(0))
}

func TestResult_Of_NonNilErrorIsErr(t *testing.T) {
	issue := errors.New("broken")
	res := Of(10, issue)
	require.True(t, res.IsErr())

	cause, err := res.TakeCause()
	require.NoError(t, err)
	require.ErrorIs(t, cause, issue)
}

func TestResult_TakeValue_SecondTakeOnSameInstanceFails(t *testing.T) {
	res := Ok[int, string](1)

	value, err := res.TakeValue()
	require.NoError(t, err)
	require.Equal(t, 1, value)

	_, err = res.TakeValue()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestResult_TakeValue_DrainsBothChannels(t *testing.T) {
	res := Ok[int, string](1)

	_, err := res.TakeValue()
	require.NoError(t, err)

	require.False(t, res.IsOk())
	require.False(t, res.IsErr())

	_, err = res.TakeCause()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestResult_TakeValue_OnFailedResultReportsWrongChannel(t *testing.T) {
	res := Err[int, string]("boom")

	_, err := res.TakeValue()
	require.ErrorIs(t, err, ErrInvalidState)
	require.ErrorContains(t, err, "boom")

	// The failed take must not change the state.
	require.True(t, res.IsErr())
}

func TestResult_TakeCause_SecondTakeOnSameInstanceFails(t *testing.T) {
	res := Err[int, string]("boom")

	cause, err := res.TakeCause()
	require.NoError(t, err)
	require.Equal(t, "boom", cause)

	_, err = res.TakeCause()
	require.ErrorIs(t, err, ErrInvalidState)
	require.False(t, res.IsErr())
}

func TestResult_TakeCause_OnSuccessfulResultFailsWithoutStateChange(t *testing.T) {
	res := Ok[int, string](1)

	_, err := res.TakeCause()
	require.ErrorIs(t, err, ErrInvalidState)
	require.True(t, res.IsOk())
}

func TestResult_Expect_ReturnsValueAndConsumes(t *testing.T) {
	res := Ok[int, string](7)
	require.Equal(t, 7, res.Expect("must succeed"))
	require.False(t, res.IsOk())
}

func TestResult_Expect_PanicsWithMessageAndCause(t *testing.T) {
	res := Err[int, string]("boom")
	require.PanicsWithValue(t, "must succeed: boom", func() {
		res.Expect("must succeed")
	})
}

func TestResult_Value_And_Cause_DoNotConsume(t *testing.T) {
	res := Ok[int, string](3)
	for i := 0; i < 3; i++ {
		value, ok := res.Value()
		require.True(t, ok)
		require.Equal(t, 3, value)

		_, ok = res.Cause()
		require.False(t, ok)
	}
	require.True(t, res.IsOk())
}

func TestResult_UnwrapOr_PeeksWithFallback(t *testing.T) {
	ok := Ok[int, string](5)
	require.Equal(t, 5, ok.UnwrapOr(9))
	require.True(t, ok.IsOk(), "fallback accessors must not consume")

	require.Equal(t, 9, Err[int, string]("boom").UnwrapOr(9))
}

func TestResult_UnwrapOrElse_ReceivesCause(t *testing.T) {
	got := Err[int, string]("boom").UnwrapOrElse(func(cause string) int {
		require.Equal(t, "boom", cause)
		return -1
	})
	require.Equal(t, -1, got)

	got = Ok[int, string](2).UnwrapOrElse(func(string) int {
		t.Fatal("fallback must not run on a successful result")
		return 0
	})
	require.Equal(t, 2, got)
}

func TestResult_Or_SuccessKeepsReceiver(t *testing.T) {
	res := Ok[int, string](1).Or(Ok[int, string](2))
	value, err := res.TakeValue()
	require.NoError(t, err)
	require.Equal(t, 1, value)
}

func TestResult_Or_FailureTakesAlternative(t *testing.T) {
	res := Err[int, string]("boom").Or(Ok[int, string](2))
	value, err := res.TakeValue()
	require.NoError(t, err)
	require.Equal(t, 2, value)
}

func TestResult_Map_TransformsOnlyTheSuccessChannel(t *testing.T) {
	double := func(n int) int { return 2 * n }

	require.Equal(t, 4, Ok[int, string](2).Map(double).UnwrapOr(0))

	failed := Err[int, string]("boom").Map(func(int) int {
		t.Fatal("map must not run on a failed result")
		return 0
	})
	require.True(t, failed.IsErr())
}

func TestResult_Map_DoesNotAffectOriginal(t *testing.T) {
	original := Ok[int, string](2)
	_ = original.Map(func(n int) int { return n + 1 })
	require.Equal(t, 2, original.UnwrapOr(0))
	require.True(t, original.IsOk())
}

func TestResult_MapErr_TransformsOnlyTheFailureChannel(t *testing.T) {
	annotate := func(cause string) string { return "while parsing: " + cause }

	failed := Err[int, string]("boom").MapErr(annotate)
	cause, ok := failed.Cause()
	require.True(t, ok)
	require.Equal(t, "while parsing: boom", cause)

	ok2 := Ok[int, string](1).MapErr(func(string) string {
		t.Fatal("mapErr must not run on a successful result")
		return ""
	})
	require.True(t, ok2.IsOk())
}

func TestMap_ChangesSuccessType(t *testing.T) {
	res := Map(Ok[int, string](21), func(n int) string {
		return fmt.Sprintf("%d", 2*n)
	})
	require.Equal(t, "42", res.UnwrapOr(""))

	failed := Map(Err[int, string]("boom"), func(int) string { return "never" })
	cause, ok := failed.Cause()
	require.True(t, ok)
	require.Equal(t, "boom", cause)
}

func TestMapErr_ChangesCauseType(t *testing.T) {
	res := MapErr(Err[int, string]("boom"), errors.New)
	cause, ok := res.Cause()
	require.True(t, ok)
	require.EqualError(t, cause, "boom")

	passed := MapErr(Ok[int, string](1), func(string) error { return nil })
	require.True(t, passed.IsOk())
}

func TestAndThen_ChainsComputations(t *testing.T) {
	half := func(n int) Result[int, string] {
		if n%2 != 0 {
			return Err[int, string]("odd input")
		}
		return Ok[int, string](n / 2)
	}

	require.Equal(t, 2, AndThen(Ok[int, string](4), half).UnwrapOr(-1))

	failed := AndThen(Ok[int, string](3), half)
	cause, ok := failed.Cause()
	require.True(t, ok)
	require.Equal(t, "odd input", cause)

	passedThrough := AndThen(Err[int, string]("boom"), half)
	cause, ok = passedThrough.Cause()
	require.True(t, ok)
	require.Equal(t, "boom", cause)
}

func TestMatch_RunsExactlyOneHandler(t *testing.T) {
	got := Match(Ok[int, string](2),
		func(n int) string { return fmt.Sprintf("ok %d", n) },
		func(string) string {
			t.Fatal("err handler must not run")
			return ""
		},
	)
	require.Equal(t, "ok 2", got)

	got = Match(Err[int, string]("boom"),
		func(int) string {
			t.Fatal("ok handler must not run")
			return ""
		},
		func(cause string) string { return "err " + cause },
	)
	require.Equal(t, "err boom", got)
}

func TestMatch_DrainedDispatchesToErrWithZeroCause(t *testing.T) {
	res := Ok[int, string](1)
	_, err := res.TakeValue()
	require.NoError(t, err)

	got := Match(res,
		func(int) string { return "ok" },
		func(cause string) string {
			require.Zero(t, cause)
			return "drained"
		},
	)
	require.Equal(t, "drained", got)
}

func TestResult_Accept_DispatchesToMatchingVisitorMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	visitor := NewMockVisitor[int, string](ctrl)

	visitor.EXPECT().Ok(12)
	Ok[int, string](12).Accept(visitor)

	visitor.EXPECT().Err("boom")
	Err[int, string]("boom").Accept(visitor)
}

func TestResult_AsOkOption_ProjectsSuccessChannel(t *testing.T) {
	okOption := Ok[int, string](3).AsOkOption()
	require.True(t, okOption.IsPresent())
	require.Equal(t, 3, okOption.UnwrapOr(0))

	require.True(t, Err[int, string]("boom").AsOkOption().IsAbsent())
}

func TestResult_AsErrOption_ProjectsFailureChannel(t *testing.T) {
	errOption := Err[int, string]("boom").AsErrOption()
	require.True(t, errOption.IsPresent())
	require.Equal(t, "boom", errOption.UnwrapOr(""))

	require.True(t, Ok[int, string](3).AsErrOption().IsAbsent())
}

func TestResult_String(t *testing.T) {
	require.Equal(t, "Ok(1)", Ok[int, string](1).String())
	require.Equal(t, "Err(boom)", Err[int, string]("boom").String())

	res := Ok[int, string](1)
	_, err := res.TakeValue()
	require.NoError(t, err)
	require.Equal(t, "Drained", res.String())
}
