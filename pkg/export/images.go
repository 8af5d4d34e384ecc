/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"dji.tools/djilog/pkg/record"
)

// CollectImages drains the iterator and returns every embedded JPEG
// payload in stream order.
func CollectImages(it *record.Iterator) ([][]byte, error) {
	var images [][]byte
	for it.More() {
		rec, err := it.Next()
		if err != nil {
			return images, err
		}
		if rec == nil {
			break
		}
		if rec.Type == record.TypeJPEG && len(rec.JPEG) > 0 {
			images = append(images, rec.JPEG)
		}
	}
	return images, nil
}

// WriteImages writes each payload as moment_NN.jpeg under dir,
// creating it if needed, and returns the written paths.
func WriteImages(dir string, images [][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(images))
	for i, img := range images {
		path := filepath.Join(dir, fmt.Sprintf("moment_%02d.jpeg", i+1))
		if err := os.WriteFile(path, img, 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
