// Package inference runs Hugging Face transformer exports in-process with
// ONNX Runtime.
//
// It contains the pieces shared by the classifier and the embedder:
//
//   - Lazy, a thread-safe run-once loader used for process-wide model
//     singletons. Concurrent first calls share one load; a failed load is
//     reported to every waiter and attempted again on the next call.
//   - InitRuntime, which initializes the ONNX Runtime environment once.
//   - Session, a tokenizer.json tokenizer paired with an ONNX graph.
//   - Activation and pooling helpers (Sigmoid, Softmax, MeanPool, L2Normalize).
package inference
