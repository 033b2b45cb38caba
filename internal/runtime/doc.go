// Package runtime provides the execution context for gitup commands.
//
// It encapsulates shared dependencies needed by actions, such as the
// authenticated GitHub client and the logger.
package runtime
