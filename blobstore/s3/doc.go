// Package s3 provides a blobstore.Store backed by Amazon S3.
//
// Dataset files are addressed as bucket objects under an optional key
// prefix. Credentials and region resolution follow the standard AWS SDK
// configuration chain.
package s3
