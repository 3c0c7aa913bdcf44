package ninja

// buildRules emits the generic rule definitions shared by every build
// statement in the script.
func (g *Generator) buildRules() {
	g.printf("%s", "rule CompileC\n" +
		"  description = Compiling C source\n" +
		"  depfile = $out.d\n" +
		"  deps = gcc\n" +
		"  command = $cc -MMD -MF $out.d $cFlags -c $in -o $out\n" +
		"\n" +

		"rule CompileCxx\n" +
		"  description = Compiling C++ source\n" +
		"  depfile = $out.d\n" +
		"  deps = gcc\n" +
		"  command = $cxx -MMD -MF $out.d $cxxFlags -c $in -o $out\n" +
		"\n" +

		"rule Link\n" +
		"  description = Linking\n" +
		"  command = $cc $linkFlags -o $out $in $ldFlags\n" +
		"\n" +

		"rule CopyFile\n" +
		"  description = Copying file\n" +
		"  command = mkdir -p $$(dirname $out) && cp -f -T $in $out\n" +
		"\n" +

		"rule BundleFile\n" +
		"  description = Bundling file\n" +
		"  command = mkdir -p $$(dirname $out) && cp -f -T $in $out" +
		" && chmod $modeFlags $out\n" +
		"\n" +

		"rule MakeDir\n" +
		"  description = Making directory\n" +
		"  command = mkdir -p $out\n" +
		"\n" +

		// The app's MD5 hash covers the whole staging area: the directory
		// structure, the contents of regular files, and the targets of
		// symlinks (not followed).
		"rule MakeAppInfoProperties\n" +
		"  description = Creating info.properties\n" +
		"  command = rm -f $out && $\n" +
		"            md5=$$( ( cd $workingDir/staging && $\n" +
		"                      find -P -print0 |LC_ALL=C sort -z && $\n" +
		"                      find -P -type f -print0 |LC_ALL=C sort -z" +
		" |xargs -0 md5sum && $\n" +
		"                      find -P -type l -print0 |LC_ALL=C sort -z" +
		" |xargs -0 -r -n 1 readlink $\n" +
		"                    ) | md5sum) && $\n" +
		"            md5=$${md5%% *} && $\n" +
		"            ( echo \"app.name=$name\" && $\n" +
		"              echo \"app.md5=$$md5\" && $\n" +
		"              echo \"app.version=$version\" $\n" +
		"            ) > $out\n" +
		"\n" +

		// An update pack is a JSON header describing the app followed by a
		// bzip2 tarball of its staging area. File order inside the tarball
		// is fixed so the pack is reproducible.
		"rule PackApp\n" +
		"  description = Packaging app\n" +
		"  command = (cd $workingDir/staging && find . -print0" +
		" | LC_ALL=C sort -z |tar --no-recursion --null -T -" +
		" -cjf - --mtime=$adefPath) > $workingDir/$name.$target && $\n" +
		"            tarballSize=`stat -c '%s' $workingDir/$name.$target`" +
		" && $\n" +
		"            md5=`grep '^app.md5=' $in | sed 's/^app.md5=//'`" +
		" && $\n" +
		"            ( printf '{\\n' && $\n" +
		"              printf '\"command\":\"updateApp\",\\n' && $\n" +
		"              printf '\"name\":\"$name\",\\n' && $\n" +
		"              printf '\"version\":\"$version\",\\n' && $\n" +
		"              printf '\"md5\":\"%s\",\\n' \"$$md5\" && $\n" +
		"              printf '\"size\":%s\\n' \"$$tarballSize\" && $\n" +
		"              printf '}' && $\n" +
		"              cat $workingDir/$name.$target $\n" +
		"            ) > $out\n" +
		"\n" +

		"rule BinPackApp\n" +
		"  description = Packaging app for distribution.\n" +
		"  command = cp -r $stagingDir/* $workingDir/ && $\n" +
		"            rm $workingDir/info.properties $workingDir/root.cfg" +
		" && $\n" +
		"            (cd $workingDir/ && find . -print0 |LC_ALL=C sort -z" +
		" |tar --no-recursion --null -T - -cjf - --mtime=$adefPath)" +
		" > $out\n" +
		"\n")
}
