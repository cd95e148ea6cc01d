// Package blobstore abstracts where benchmark dataset files live.
//
// A Store resolves a dataset file name to a readable stream. Implementations
// cover the local filesystem, an in-memory map for testing, and
// S3-compatible object storage (see the s3 and minio subpackages).
package blobstore
