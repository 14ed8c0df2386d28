// renameRawSeq renames raw fq.gz files {key}_{extension} to {name}_{extension}
// as given by the metadata sheet. Nothing is renamed unless every file has a
// unique target.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	simple_util "github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/spisCSM/config"
	"github.com/liserjrqlxue/spisCSM/rename"
)

var (
	meta = flag.String(
		"meta",
		"",
		"metadata sheet, .csv/.xlsx or tab separated",
	)
	raw = flag.String(
		"raw",
		"",
		"raw seq dir",
	)
	key = flag.String(
		"key",
		"",
		"metadata column of raw file prefix, default 'fastq seq file name'",
	)
	name = flag.String(
		"name",
		"",
		"metadata column of sample name, default 'RNAseq'",
	)
	cfg = flag.String(
		"cfg",
		"",
		"config file, yaml/toml/json",
	)
	dryRun = flag.Bool(
		"dry",
		false,
		"write the plan only, rename nothing",
	)
	logFile = flag.String(
		"log",
		"",
		"output log file, default raw/rename.log",
	)
)

func main() {
	flag.Parse()
	c, err := config.Load(*cfg)
	simple_util.CheckErr(err)
	for _, kv := range []struct {
		flag  string
		value *string
	}{
		{*meta, &c.Meta},
		{*raw, &c.Raw},
		{*key, &c.Key},
		{*name, &c.Name},
	} {
		if kv.flag != "" {
			*kv.value = kv.flag
		}
	}
	if c.Meta == "" || c.Raw == "" {
		flag.Usage()
		log.Printf("-meta and -raw required")
		os.Exit(0)
	}

	if *logFile == "" {
		*logFile = filepath.Join(c.Raw, "rename.log")
	}
	logF, err := os.Create(*logFile)
	simple_util.CheckErr(err)
	defer simple_util.DeferClose(logF)
	log.SetOutput(io.MultiWriter(os.Stderr, logF))
	log.SetFlags(log.Ldate | log.Ltime)
	log.Printf("Start:%+v", os.Args)
	log.Printf("Log file:%v", *logFile)

	m, err := rename.LoadMeta(c.Meta, c.Key, c.Name)
	simple_util.CheckErr(err)
	log.Printf("metadata keys:%d", len(m))
	logDir := filepath.Dir(*logFile)
	simple_util.CheckErr(simple_util.CopyFile(filepath.Join(logDir, "rename.meta"+filepath.Ext(c.Meta)), c.Meta))

	plan, err := rename.Build(c.Raw, m)
	simple_util.CheckErr(err)
	plan.Log()

	planF, err := os.Create(filepath.Join(logDir, "rename.plan.tsv"))
	simple_util.CheckErr(err)
	simple_util.CheckErr(plan.WriteTSV(planF))
	simple_util.CheckErr(planF.Close())

	simple_util.CheckErr(plan.Err())
	if *dryRun {
		log.Printf("dry run, nothing renamed")
		return
	}
	simple_util.CheckErr(rename.Apply(c.Raw, plan))
	log.Printf("End")
}
