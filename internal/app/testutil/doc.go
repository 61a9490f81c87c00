// Package testutil provides testify mocks for the speech adapters and fixtures for
// building configurations, stores and pipelines in tests.
//
// Typical use:
//
//	stt := testutil.NewMockTranscriber()
//	stt.On("Transcribe", mock.Anything, mock.Anything).Return("hello world", nil)
//
//	cfg := testutil.NewTestConfig(t, config.VariantClassic)
package testutil
