// Package modelhub locates the files of a model export on local disk.
//
// Resolution order for a ModelSpec:
//
//  1. ModelSpec.Dir, when it exists (e.g. a fine-tuned export
//     mounted into the container);
//  2. the hub cache directory, when it already holds every listed file;
//  3. object storage, mirroring <prefix>/<name>/ into the cache;
//  4. the Hugging Face hub, downloading the listed files from the repo.
//
// Downloads are written to a temporary file and renamed into place, so a
// crashed download never leaves a truncated model behind.
package modelhub
